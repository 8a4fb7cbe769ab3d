package main

import (
	"log"
	"net/http"
	"os"

	"myhotel/config"
	"myhotel/jobs"
	"myhotel/models"
	"myhotel/routes"
	"myhotel/services"
	"myhotel/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Profile{}, &models.Room{}, &models.Booking{}, &models.Review{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := validator.RegisterBindingValidations(); err != nil {
		log.Fatalf("Failed to register binding validations: %v", err)
	}

	services.ConnectElastic()

	jobs.SetPopularRoomRefresher(services.PopularRoomJob{})
	jobs.SetCheckInNotifier(services.CheckInDigestJob{})

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
