package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func cstTime(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, hour, minute, 0, 0, CST)
}

func TestDeriveSlotBoundaries(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{6, 29, ""},
		{6, 30, "morning"},
		{8, 0, "morning"},
		{10, 0, "morning"},
		{10, 1, ""},
		{19, 59, ""},
		{20, 0, "evening"},
		{23, 30, "evening"},
		{23, 31, ""},
		{0, 0, ""},
	}
	for _, tc := range cases {
		w := Derive(cstTime(t, tc.hour, tc.minute), 0)
		require.Equalf(t, tc.want, w.Slot, "%02d:%02d", tc.hour, tc.minute)
	}
}

func TestDeriveAppliesOffset(t *testing.T) {
	// 本地时钟 06:00，偏移 +30 分钟后恰好进入早宣窗口
	now := cstTime(t, 6, 0)
	require.Empty(t, Derive(now, 0).Slot)
	require.Equal(t, "morning", Derive(now, 30*time.Minute).Slot)
}

func TestDeriveDateCrossesMidnightInCST(t *testing.T) {
	// UTC 18:00 在 UTC+8 已经是第二天
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	w := Derive(now, 0)
	require.Equal(t, "2025-03-11", w.Date)
	require.Equal(t, "02:00", w.Clock)
}

func TestCutoffDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, CST)
	require.Equal(t, "2025-03-03", CutoffDate(now))

	// UTC 时刻 2025-03-10 20:00 在 UTC+8 是 03-11，窗口起点随之后移一天
	utcEvening := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "2025-03-04", CutoffDate(utcEvening))
}

func TestLastNDates(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, CST)
	got := LastNDates(now, 7)
	require.Equal(t, []string{
		"2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07",
		"2025-03-08", "2025-03-09", "2025-03-10",
	}, got)
}
