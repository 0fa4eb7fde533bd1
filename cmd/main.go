package main

import (
	"fmt"

	"github.com/katiamach/weather-dashboard/internal/api"
	"github.com/katiamach/weather-dashboard/internal/config"
	"github.com/katiamach/weather-dashboard/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather dashboard: %v", err))
	}
}
