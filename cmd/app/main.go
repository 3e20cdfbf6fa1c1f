package main

import (
	"deportur/config"
	"deportur/di"
	"deportur/shared/logger"
)

// @title DeporTur Admin API
// @version 1.0
// @description Back office for the DeporTur sporting goods rental business.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.Serve()
}
