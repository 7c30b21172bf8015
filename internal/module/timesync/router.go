package timesync

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleTimeSync) InitRouter(r *gin.RouterGroup) {
	// 客户端用该端点做一次性时钟同步，只返回服务器毫秒时间戳
	r.GET("/time", ServerTime)
}
