// Package window 实现打卡时段的纯函数推导。
// 所有日历计算都基于固定的 UTC+8（中国标准时间，无夏令时）。
package window

import (
	"time"

	"team-checkin-system/internal/model"
)

// DateLayout 打卡日期的标准格式
const DateLayout = "2006-01-02"

// CST 固定 UTC+8 时区
var CST = time.FixedZone("CST", 8*3600)

// 时段边界，双闭区间，单位为当天第几分钟
const (
	morningStart = 6*60 + 30  // 06:30
	morningEnd   = 10 * 60    // 10:00
	eveningStart = 20 * 60    // 20:00
	eveningEnd   = 23*60 + 30 // 23:30
)

// Window 某一时刻的打卡状态：当天日期、可打卡的时段（无则为空）、展示用时钟
type Window struct {
	Date  string `json:"date"`
	Slot  string `json:"slot"`
	Clock string `json:"clock"`
}

// Derive 以偏移修正后的时刻推导打卡窗口
// offset 是客户端对服务器时钟的一次性修正值，服务器侧传 0
func Derive(now time.Time, offset time.Duration) Window {
	local := now.Add(offset).In(CST)
	minutes := local.Hour()*60 + local.Minute()

	var slot string
	switch {
	case minutes >= morningStart && minutes <= morningEnd:
		slot = model.SlotMorning
	case minutes >= eveningStart && minutes <= eveningEnd:
		slot = model.SlotEvening
	}

	return Window{
		Date:  local.Format(DateLayout),
		Slot:  slot,
		Clock: local.Format("15:04"),
	}
}

// CivilDate 返回 UTC+8 下的日历日期
func CivilDate(now time.Time) string {
	return now.In(CST).Format(DateLayout)
}

// CutoffDate 返回 7 天统计窗口的起始日期（含当天，往前推 7 个日历日）
func CutoffDate(now time.Time) string {
	return now.In(CST).AddDate(0, 0, -7).Format(DateLayout)
}

// LastNDates 返回以 now 的 UTC+8 日期为终点的最近 n 个日历日期，升序
func LastNDates(now time.Time, n int) []string {
	local := now.In(CST)
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, local.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates
}
