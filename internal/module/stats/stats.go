package stats

import (
	"time"

	"team-checkin-system/config"
	"team-checkin-system/internal/global/cache"
	"team-checkin-system/internal/global/response"
	"team-checkin-system/internal/model"
	"team-checkin-system/pkg/window"

	"github.com/gin-gonic/gin"
)

const cacheTTL = 30 * time.Second

// Recent 返回最近 7 天的原始打卡记录，倒序
// 对外形态就是记录数组本身，空窗口返回 []
func Recent(c *gin.Context) {
	now := time.Now()
	key := "stats:recent:" + window.CutoffDate(now)

	var records []model.CheckIn
	if hit, err := cache.GetJSON(c.Request.Context(), key, &records); err != nil {
		// 缓存故障退化为直接查库
		log.Warn("读取统计缓存失败", "key", key, "error", err)
	} else if hit {
		response.Success(c, records)
		return
	}

	records, err := recentEvents(now)
	if err != nil {
		log.Error("查询打卡统计失败", "error", err)
		response.Fail(c, response.ErrStatsFailed.WithOrigin(err))
		return
	}

	if err := cache.SetJSON(c.Request.Context(), key, records, cacheTTL); err != nil {
		log.Warn("写入统计缓存失败", "key", key, "error", err)
	}
	response.Success(c, records)
}

// TeamToday 看板里一个组的当日状态
type TeamToday struct {
	Team           string   `json:"team"`
	MemberCount    int      `json:"member_count"`
	Morning        int      `json:"morning"`
	Evening        int      `json:"evening"`
	MorningMissing []string `json:"morning_missing"`
	EveningMissing []string `json:"evening_missing"`
}

// DashboardResponse 今日看板
type DashboardResponse struct {
	Date  string      `json:"date"`
	Teams []TeamToday `json:"teams"`
}

// Dashboard 今日各组打卡人数与未打卡名单
func Dashboard(c *gin.Context) {
	now := time.Now()
	events, err := recentEvents(now)
	if err != nil {
		log.Error("查询打卡统计失败", "error", err)
		response.Fail(c, response.ErrStatsFailed.WithOrigin(err))
		return
	}

	roster := config.Get().Roster
	today := window.CivilDate(now)
	counts := TodayCounts(events, roster, today)

	resp := DashboardResponse{Date: today, Teams: make([]TeamToday, 0, len(roster))}
	for _, team := range roster {
		resp.Teams = append(resp.Teams, TeamToday{
			Team:           team.Name,
			MemberCount:    len(team.Members),
			Morning:        counts[team.Name].Morning,
			Evening:        counts[team.Name].Evening,
			MorningMissing: MissingMembers(events, roster, team.Name, today, model.SlotMorning),
			EveningMissing: MissingMembers(events, roster, team.Name, today, model.SlotEvening),
		})
	}
	response.Success(c, resp)
}

// WeeklyResponse 周报
type WeeklyResponse struct {
	Days  []string     `json:"days"`
	Teams []TeamWeekly `json:"teams"`
}

// Weekly 最近 7 天各组完成率
func Weekly(c *gin.Context) {
	now := time.Now()
	events, err := recentEvents(now)
	if err != nil {
		log.Error("查询打卡统计失败", "error", err)
		response.Fail(c, response.ErrStatsFailed.WithOrigin(err))
		return
	}

	days := window.LastNDates(now, 7)
	response.Success(c, WeeklyResponse{
		Days:  days,
		Teams: WeeklyRates(events, config.Get().Roster, days),
	})
}
