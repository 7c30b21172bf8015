package timesync

import (
	"time"

	"team-checkin-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// TimeResponse 服务器时间响应体
type TimeResponse struct {
	Timestamp int64 `json:"timestamp"`
}

// ServerTime 返回服务器当前的毫秒时间戳
// 打卡事件的 timestamp 永远由服务器时钟生成，这里只服务于客户端的偏移计算
func ServerTime(c *gin.Context) {
	response.Success(c, TimeResponse{Timestamp: time.Now().UnixMilli()})
}
