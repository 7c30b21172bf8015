package timesync

import (
	"log/slog"

	"team-checkin-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTimeSync struct{}

func (m *ModuleTimeSync) GetName() string {
	return "TimeSync"
}

func (m *ModuleTimeSync) Init() {
	log = logger.New("TimeSync")
}
