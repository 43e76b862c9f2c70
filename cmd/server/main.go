package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"stafflane-system/config"
	"stafflane-system/internal/database"
	"stafflane-system/internal/hr/handler"
	"stafflane-system/internal/hr/store"
	"stafflane-system/internal/logger"
	"stafflane-system/internal/middleware"
	"stafflane-system/internal/storage"
	"stafflane-system/internal/webui"
)

func main() {
	cfg := config.LoadConfig()
	logger.InitLogging(cfg.Server.LogFile)

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.MigrateHRDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)

	uploads, err := storage.NewUploads(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	hrHandler := handler.NewHRHandler(store.New(db), redisClient, uploads)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit))

	webui.Register(r)

	// Uploaded images are public by filename; see storage.Uploads.
	r.Static("/uploads", uploads.Dir())

	api := r.Group("/api")
	{
		employees := api.Group("/employees")
		{
			employees.GET("", hrHandler.ListEmployees)
			employees.POST("", hrHandler.CreateEmployee)
			employees.PUT("/:id", hrHandler.UpdateEmployee)
			employees.DELETE("/:id", hrHandler.DeleteEmployee)
			employees.GET("/:id/training", hrHandler.ListTraining)
			employees.POST("/:id/training", hrHandler.AddTraining)
		}
	}

	log.Printf("Server running on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
