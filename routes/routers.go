package routes

import (
	"fmt"

	"myhotel/constants"
	"myhotel/controllers"
	middlewares "myhotel/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())

	// Các trang dành cho web
	router.GET("/", controllers.GetPopularRooms)
	router.GET("/rooms", controllers.GetRooms)
	router.POST("/rooms", controllers.FilterRoomsForm)
	router.GET("/rooms/:id", controllers.GetRoomDetail)
	router.POST("/rooms/:id", middlewares.LoginRequiredMiddleware(), controllers.BookRoom)
	router.POST("/rooms/:id/review", middlewares.LoginRequiredMiddleware(), controllers.CreateReview)
	router.POST("/cancel_booking/:id", middlewares.LoginRequiredMiddleware(), controllers.CancelBooking)
	router.GET("/profile", middlewares.LoginRequiredMiddleware(), controllers.GetProfile)
	router.POST("/login", controllers.Login)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/logout", controllers.Logout)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/rooms", controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)
	v1.POST("/rooms/:id/preview", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UploadRoomPreview)
	v1.POST("/rooms/:id/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)

	v1.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteBooking)
	v1.POST("/bookings/:id/cancel", middlewares.AuthMiddleware(), controllers.CancelBooking)
	v1.PUT("/bookings/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ChangeBookingStatus)

	v1.GET("/reviews", controllers.GetReviews)
	v1.GET("/reviews/:id", controllers.GetReviewDetail)
	v1.PUT("/reviews/:id", middlewares.AuthMiddleware(), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview)

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)
	v1.POST("/profile/preview", middlewares.AuthMiddleware(), controllers.UploadProfilePreview)

	v1.GET("/search", controllers.SearchRooms)
	v1.POST("/search/reindex", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ReindexRooms)

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
