package stats

import (
	"time"

	"team-checkin-system/internal/global/database"
	"team-checkin-system/internal/model"
	"team-checkin-system/pkg/window"
)

// recentEvents 查询 7 天窗口内的全部打卡记录，按打卡时刻倒序
// 窗口起点是 UTC+8 日历日期，边界日期本身包含在内
func recentEvents(now time.Time) ([]model.CheckIn, error) {
	cutoff := window.CutoffDate(now)
	records := make([]model.CheckIn, 0)
	err := database.DB.
		Where("date >= ?", cutoff).
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}
