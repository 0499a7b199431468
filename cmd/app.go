package cmd

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	config "curtisos.com/curtisos/internal/configs"
	repository "curtisos.com/curtisos/internal/repositories"
	"curtisos.com/curtisos/internal/services"
)

type app struct {
	cfg         config.Config
	taskService *services.TaskService
	close       func()
}

func loadConfig() config.Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return config.Load()
}

func newApp() *app {
	cfg := loadConfig()

	database := config.NewDatabaseClient(cfg.DatabaseDSN)
	taskRepo := repository.NewTaskRepository(database)

	notifier, closeNotifier := config.NewNotifier(cfg)

	taskService := services.NewTaskService(
		taskRepo,
		notifier,
		services.WithDueSoonWindow(time.Duration(cfg.DueSoonWindowHours)*time.Hour),
	)

	return &app{
		cfg:         cfg,
		taskService: taskService,
		close: func() {
			closeNotifier()
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}
}
