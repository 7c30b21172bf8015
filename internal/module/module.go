package module

import (
	"team-checkin-system/internal/module/checkin"
	"team-checkin-system/internal/module/ping"
	"team-checkin-system/internal/module/stats"
	"team-checkin-system/internal/module/timesync"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&timesync.ModuleTimeSync{},
		&checkin.ModuleCheckin{},
		&stats.ModuleStats{},
	})
}
