package main

import (
	"luxe/config"
	"luxe/di"
	"luxe/shared/logger"
)

// @title Luxe Resorts API
// @version 1.0
// @description Dynamic room pricing and booking service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
