package main

import (
	"tzatlas/config"
	"tzatlas/di"
	_ "tzatlas/docs"
	"tzatlas/shared/logger"
)

// @title Timezone Atlas API
// @version 1.0
// @description Timezone resolution, conversion and scheduling service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
