package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/devshare/devshare-go/docs"
	"github.com/devshare/devshare-go/internal/api/handlers"
	"github.com/devshare/devshare-go/internal/api/middleware"
	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/repository"
	"github.com/devshare/devshare-go/internal/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// init
	repos := repository.NewRepositories(db)
	hub := ws.NewHub()
	services := application.New(repos, hub)
	h := handlers.New(services, hub)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	r.GET("/ws/notifications", h.Feed.Stream)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	projects := r.Group("/project")
	{
		projects.POST("/create", middleware.JWTAuthMiddleware(), h.Project.CreateProject)
		projects.POST("/getall", h.Project.GetAllProjects)
		projects.GET("/trending", h.Project.TrendingProjects)
		projects.POST("/search", h.Project.SearchProjects)
		projects.POST("/all-latest-count", h.Project.AllLatestProjectsCount)
		projects.POST("/search-count", h.Project.SearchProjectsCount)
		projects.POST("/get", h.Project.GetProject)
		projects.POST("/user-written", middleware.JWTAuthMiddleware(), h.Project.UserWrittenProjects)
	}

	users := r.Group("/user")
	{
		users.POST("/search", h.User.SearchUsers)
		users.POST("/profile", h.User.GetProfile)
		users.POST("/update-profile-img", middleware.JWTAuthMiddleware(), h.User.UpdateProfileImg)
	}

	notifications := r.Group("/notification")
	{
		notifications.POST("/like", middleware.JWTAuthMiddleware(), h.Notification.LikeProject)
		notifications.POST("/like-status", middleware.JWTAuthMiddleware(), h.Notification.LikeStatus)
		notifications.POST("/comment", middleware.JWTAuthMiddleware(), h.Notification.AddComment)
		notifications.POST("/get-comments", h.Notification.GetComments)
		notifications.POST("/get-replies", h.Notification.GetReplies)
	}
}
