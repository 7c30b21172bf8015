package stats

import (
	"fmt"
	"net/url"
	"time"

	"team-checkin-system/config"
	"team-checkin-system/internal/global/response"
	"team-checkin-system/pkg/window"
	"team-checkin-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// recordRow 导出的原始记录行
type recordRow struct {
	ID        uint   `excel:"ID"`
	Name      string `excel:"姓名"`
	Team      string `excel:"小组"`
	Type      string `excel:"时段"`
	Date      string `excel:"日期"`
	Timestamp string `excel:"打卡时刻"`
}

// weeklyRow 导出的周报行
type weeklyRow struct {
	Team        string  `excel:"小组"`
	MemberCount int     `excel:"人数"`
	MorningRate float64 `excel:"早宣完成率(%)"`
	EveningRate float64 `excel:"晚结完成率(%)"`
}

// Export 导出最近 7 天的打卡记录和各组完成率为 xlsx
func Export(c *gin.Context) {
	now := time.Now()
	events, err := recentEvents(now)
	if err != nil {
		log.Error("查询打卡统计失败", "error", err)
		response.Fail(c, response.ErrStatsFailed.WithOrigin(err))
		return
	}

	records := make([]recordRow, 0, len(events))
	for _, e := range events {
		records = append(records, recordRow{
			ID:        e.ID,
			Name:      e.Name,
			Team:      e.Team,
			Type:      e.Type,
			Date:      e.Date,
			Timestamp: e.Timestamp.In(window.CST).Format("2006-01-02 15:04:05"),
		})
	}

	days := window.LastNDates(now, 7)
	weekly := make([]weeklyRow, 0)
	for _, w := range WeeklyRates(events, config.Get().Roster, days) {
		weekly = append(weekly, weeklyRow{
			Team:        w.Team,
			MemberCount: w.MemberCount,
			MorningRate: w.MorningRate,
			EveningRate: w.EveningRate,
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "打卡记录", records); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	if err := tools.ExportToExcel(f, "周报", weekly); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	// 去掉 excelize 自带的默认工作表，失败只影响观感，不中断导出
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Warn("删除默认工作表失败", "error", err)
	}

	fileName := fmt.Sprintf("checkin-weekly-%s.xlsx", window.CivilDate(now))
	escaped := url.QueryEscape(fileName)
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	if err := f.Write(c.Writer); err != nil {
		log.Error("写出导出文件失败", "error", err)
	}
}
