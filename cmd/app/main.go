package main

import (
	"tzconv/config"
	"tzconv/di"
	"tzconv/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
