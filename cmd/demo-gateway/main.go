package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-mobile-sdk/internal/gateway"
	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	"github.com/noah-isme/sma-mobile-sdk/pkg/logger"
	"github.com/noah-isme/sma-mobile-sdk/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	gw, err := gateway.New(cfg.Gateway, logr, metrics.NewRecorder())
	if err != nil {
		logr.Sugar().Fatalw("failed to build gateway", "error", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Gateway.Port)
	logr.Sugar().Infow("demo gateway starting", "addr", addr, "env", cfg.Env)
	if err := gw.Router().Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
