package stats

import (
	"github.com/gin-gonic/gin"
)

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")
	{
		// 最近 7 天原始打卡记录，倒序
		statsGroup.GET("", Recent)
		// 今日各组人数与未打卡名单
		statsGroup.GET("/dashboard", Dashboard)
		// 最近 7 天各组完成率
		statsGroup.GET("/weekly", Weekly)
		// 周报导出为 xlsx
		statsGroup.GET("/export", Export)
	}
}
