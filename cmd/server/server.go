package server

import (
	"fmt"
	"log/slog"
	"time"

	"team-checkin-system/config"
	"team-checkin-system/internal/global/cache"
	"team-checkin-system/internal/global/database"
	"team-checkin-system/internal/global/logger"
	"team-checkin-system/internal/global/middleware"
	internalSentry "team-checkin-system/internal/global/sentry"
	"team-checkin-system/internal/module"
	"team-checkin-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("Failed to init Sentry", "error", err)
	}

	database.Init()
	cache.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(internalSentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer internalSentry.Flush(2 * time.Second)
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
