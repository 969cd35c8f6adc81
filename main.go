package main

import (
	"interview-scheduler/core/logger"
	"interview-scheduler/core/server"
)

// @title Interview Scheduler API
// @version 1.0
// @description API backend for matching candidate and interviewer availability into interview schedules
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
