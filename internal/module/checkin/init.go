package checkin

import (
	"log/slog"

	"team-checkin-system/internal/global/logger"
)

var log *slog.Logger

type ModuleCheckin struct{}

func (m *ModuleCheckin) GetName() string {
	return "Checkin"
}

func (m *ModuleCheckin) Init() {
	log = logger.New("Checkin")
}
