package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRosterLookups(t *testing.T) {
	r := Roster{
		{Name: "alpha", Members: []string{"alice", "bob"}},
		{Name: "beta", Members: []string{"carol"}},
	}

	require.Equal(t, []string{"alpha", "beta"}, r.Teams())
	require.Equal(t, []string{"alice", "bob"}, r.Members("alpha"))
	require.Nil(t, r.Members("gamma"))

	require.True(t, r.Contains("alpha", "bob"))
	require.False(t, r.Contains("alpha", "carol"))
	require.False(t, r.Contains("gamma", "alice"))
}

func TestDefaultRosterShape(t *testing.T) {
	r := DefaultRoster()
	require.Len(t, r, 5)
	for _, team := range r {
		require.NotEmpty(t, team.Name)
		require.NotEmpty(t, team.Members)
		// 组长排在自己组名单的第一位
		require.Equal(t, team.Name, team.Members[0])
	}
}
