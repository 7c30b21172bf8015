package stats

import (
	"team-checkin-system/config"
	"team-checkin-system/internal/model"
)

// 纯函数聚合：输入一批打卡记录和静态名单，输出看板数据。
// 不触碰存储，便于单独测试。

// SlotCount 某组在某天早晚两个时段各有多少不同成员已打卡
type SlotCount struct {
	Morning int `json:"morning"`
	Evening int `json:"evening"`
}

// DayCount 某组在某一天的早晚打卡人数
type DayCount struct {
	Date    string `json:"date"`
	Morning int    `json:"morning"`
	Evening int    `json:"evening"`
}

// TeamWeekly 某组最近 7 天的完成情况
// 比率分母是 成员数 × 天数，单位为百分比
type TeamWeekly struct {
	Team        string     `json:"team"`
	MemberCount int        `json:"member_count"`
	MorningRate float64    `json:"morning_rate"`
	EveningRate float64    `json:"evening_rate"`
	Daily       []DayCount `json:"daily"`
}

// checkedSet 收集某组某天某时段已打卡的成员名
func checkedSet(events []model.CheckIn, team, date, slot string) map[string]bool {
	set := make(map[string]bool)
	for _, e := range events {
		if e.Team == team && e.Date == date && e.Type == slot {
			set[e.Name] = true
		}
	}
	return set
}

// TodayCounts 按组统计指定日期早晚各有多少不同成员已打卡
func TodayCounts(events []model.CheckIn, roster config.Roster, date string) map[string]SlotCount {
	result := make(map[string]SlotCount, len(roster))
	for _, team := range roster {
		result[team.Name] = SlotCount{
			Morning: len(checkedSet(events, team.Name, date, model.SlotMorning)),
			Evening: len(checkedSet(events, team.Name, date, model.SlotEvening)),
		}
	}
	return result
}

// MissingMembers 返回某组指定日期指定时段还没打卡的成员，保持名单顺序
func MissingMembers(events []model.CheckIn, roster config.Roster, team, date, slot string) []string {
	checked := checkedSet(events, team, date, slot)
	missing := make([]string, 0)
	for _, m := range roster.Members(team) {
		if !checked[m] {
			missing = append(missing, m)
		}
	}
	return missing
}

// WeeklyRates 计算每组在给定日期序列上的早晚完成率
func WeeklyRates(events []model.CheckIn, roster config.Roster, days []string) []TeamWeekly {
	result := make([]TeamWeekly, 0, len(roster))
	for _, team := range roster {
		weekly := TeamWeekly{
			Team:        team.Name,
			MemberCount: len(team.Members),
			Daily:       make([]DayCount, 0, len(days)),
		}
		var totalMorning, totalEvening int
		for _, day := range days {
			dc := DayCount{
				Date:    day,
				Morning: len(checkedSet(events, team.Name, day, model.SlotMorning)),
				Evening: len(checkedSet(events, team.Name, day, model.SlotEvening)),
			}
			totalMorning += dc.Morning
			totalEvening += dc.Evening
			weekly.Daily = append(weekly.Daily, dc)
		}
		if denom := len(days) * len(team.Members); denom > 0 {
			weekly.MorningRate = float64(totalMorning) / float64(denom) * 100
			weekly.EveningRate = float64(totalEvening) / float64(denom) * 100
		}
		result = append(result, weekly)
	}
	return result
}
