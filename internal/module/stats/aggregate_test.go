package stats

import (
	"testing"
	"time"

	"team-checkin-system/config"
	"team-checkin-system/internal/model"

	"github.com/stretchr/testify/require"
)

var testRoster = config.Roster{
	{Name: "alpha", Members: []string{"a1", "a2", "a3", "a4", "a5"}},
	{Name: "beta", Members: []string{"b1", "b2"}},
}

func event(name, team, slot, date string) model.CheckIn {
	return model.CheckIn{Name: name, Team: team, Type: slot, Date: date, Timestamp: time.Now()}
}

func TestTodayCounts(t *testing.T) {
	events := []model.CheckIn{
		event("a1", "alpha", "morning", "2025-03-10"),
		event("a2", "alpha", "morning", "2025-03-10"),
		event("a1", "alpha", "evening", "2025-03-10"),
		event("b1", "beta", "morning", "2025-03-10"),
		// 其他日期的记录不计入
		event("a3", "alpha", "morning", "2025-03-09"),
	}
	counts := TodayCounts(events, testRoster, "2025-03-10")
	require.Equal(t, SlotCount{Morning: 2, Evening: 1}, counts["alpha"])
	require.Equal(t, SlotCount{Morning: 1, Evening: 0}, counts["beta"])
}

func TestMissingMembersKeepsRosterOrder(t *testing.T) {
	// 5 人组里 3 人已早宣，缺的恰好是剩下 2 人，且保持名单顺序
	events := []model.CheckIn{
		event("a2", "alpha", "morning", "2025-03-10"),
		event("a5", "alpha", "morning", "2025-03-10"),
		event("a1", "alpha", "morning", "2025-03-10"),
	}
	missing := MissingMembers(events, testRoster, "alpha", "2025-03-10", model.SlotMorning)
	require.Equal(t, []string{"a3", "a4"}, missing)

	// 晚结没人打卡，全员缺席
	missing = MissingMembers(events, testRoster, "alpha", "2025-03-10", model.SlotEvening)
	require.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, missing)
}

func TestMissingMembersEmptyWhenAllChecked(t *testing.T) {
	events := []model.CheckIn{
		event("b1", "beta", "evening", "2025-03-10"),
		event("b2", "beta", "evening", "2025-03-10"),
	}
	require.Empty(t, MissingMembers(events, testRoster, "beta", "2025-03-10", model.SlotEvening))
}

func TestWeeklyRates(t *testing.T) {
	days := []string{"2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07",
		"2025-03-08", "2025-03-09", "2025-03-10"}

	// beta 组 2 人：7 天里早宣共 7 人次 → 7/(7*2) = 50%
	events := make([]model.CheckIn, 0)
	for i, day := range days {
		events = append(events, event("b1", "beta", "morning", day))
		if i%2 == 0 {
			events = append(events, event("b2", "beta", "evening", day))
		}
	}

	weekly := WeeklyRates(events, testRoster, days)
	require.Len(t, weekly, 2)

	require.Equal(t, "alpha", weekly[0].Team)
	require.Zero(t, weekly[0].MorningRate)
	require.Zero(t, weekly[0].EveningRate)

	beta := weekly[1]
	require.Equal(t, "beta", beta.Team)
	require.InDelta(t, 50.0, beta.MorningRate, 1e-9)
	// 4 个偶数下标的天有晚结 → 4/(7*2)
	require.InDelta(t, float64(4)/14*100, beta.EveningRate, 1e-9)
	require.Len(t, beta.Daily, 7)
	require.Equal(t, DayCount{Date: "2025-03-04", Morning: 1, Evening: 1}, beta.Daily[0])
	require.Equal(t, DayCount{Date: "2025-03-05", Morning: 1, Evening: 0}, beta.Daily[1])
}

func TestWeeklyRatesCountsDistinctMembers(t *testing.T) {
	// 同一成员同一天只计一次（唯一性约束被打破时聚合结果仍稳定）
	events := []model.CheckIn{
		event("b1", "beta", "morning", "2025-03-10"),
		event("b1", "beta", "morning", "2025-03-10"),
	}
	weekly := WeeklyRates(events, testRoster, []string{"2025-03-10"})
	require.Equal(t, 1, weekly[1].Daily[0].Morning)
}
