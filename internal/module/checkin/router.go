package checkin

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleCheckin) InitRouter(r *gin.RouterGroup) {
	// 提交打卡端点
	r.POST("/checkin", SubmitCheckin)
}
