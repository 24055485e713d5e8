package main

import (
	"lagovibes/config"
	"lagovibes/di"
	"lagovibes/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
