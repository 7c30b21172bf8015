package checkin

import (
	"errors"
	"io"
	"time"

	"team-checkin-system/config"
	"team-checkin-system/internal/global/cache"
	"team-checkin-system/internal/global/database"
	"team-checkin-system/internal/global/response"
	"team-checkin-system/internal/model"
	"team-checkin-system/pkg/window"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckinRequest 提交打卡的请求体，四个字段缺一不可
type CheckinRequest struct {
	Name string `json:"name"`
	Team string `json:"team"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// CheckinResponse 打卡成功的响应体
type CheckinResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// SubmitCheckin 提交一条打卡记录
// 同一 (name, team, type, date) 只允许打卡一次：先查后插，
// 并由表上的联合唯一索引兜底并发窗口内的重复提交
func SubmitCheckin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 空请求体等价于四个字段全部缺失
		if errors.Is(err, io.EOF) {
			response.Fail(c, response.ErrMissingFields)
			return
		}
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 任一字段缺失都在访问存储之前拒绝
	if req.Name == "" || req.Team == "" || req.Type == "" || req.Date == "" {
		response.Fail(c, response.ErrMissingFields)
		return
	}
	if !model.ValidSlot(req.Type) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("type 必须为 morning 或 evening"))
		return
	}
	if _, err := time.Parse(window.DateLayout, req.Date); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("date 格式应为 YYYY-MM-DD"))
		return
	}

	// 名单校验：名单已经是服务端配置，不再接受名单之外的提交
	if !config.Get().Roster.Contains(req.Team, req.Name) {
		log.Warn("拒绝名单外的打卡", "name", req.Name, "team", req.Team)
		response.Fail(c, response.ErrUnknownMember)
		return
	}

	var existing model.CheckIn
	err := database.DB.
		Where("name = ? AND team = ? AND type = ? AND date = ?", req.Name, req.Team, req.Type, req.Date).
		First(&existing).Error
	if err == nil {
		response.Fail(c, response.ErrAlreadyCheckedIn)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("查询已有打卡记录失败", "error", err)
		response.Fail(c, response.ErrCheckinFailed.WithOrigin(err))
		return
	}

	record := &model.CheckIn{
		Name:      req.Name,
		Team:      req.Team,
		Type:      req.Type,
		Date:      req.Date,
		Timestamp: time.Now().UTC(),
	}
	if err := database.DB.Create(record).Error; err != nil {
		// 并发下两个相同请求都可能通过上面的存在性检查，
		// 唯一索引冲突同样按重复打卡返回
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Fail(c, response.ErrAlreadyCheckedIn)
			return
		}
		log.Error("插入打卡记录失败", "error", err)
		response.Fail(c, response.ErrCheckinFailed.WithOrigin(err))
		return
	}

	// 统计缓存失效是尽力而为的，失败不影响打卡结果
	key := "stats:recent:" + window.CutoffDate(time.Now())
	if err := cache.Delete(c.Request.Context(), key); err != nil {
		log.Warn("清理统计缓存失败", "key", key, "error", err)
	}

	log.Info("打卡成功", "name", req.Name, "team", req.Team, "type", req.Type, "date", req.Date, "id", record.ID)
	response.Success(c, CheckinResponse{Success: true, ID: record.ID})
}
