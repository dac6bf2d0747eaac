package router

import (
	"github.com/gin-gonic/gin"

	"blogicum/internal/handlers"
	"blogicum/internal/middleware"
	"blogicum/internal/services"
)

func RegisterRoutes(r *gin.Engine, repo handlers.Repository) {
	mail := services.NewMailService()

	postHandler := handlers.NewPostHandler(repo)
	commentHandler := handlers.NewCommentHandler(repo, mail)
	userHandler := handlers.NewUserHandler(repo)
	authHandler := handlers.NewAuthHandler(repo)

	// Public Routes
	r.GET("/", postHandler.Home)                     // Home feed
	r.GET("/category/:slug", postHandler.Category)   // Category feed
	r.GET("/posts/:id", postHandler.Detail)          // Post detail with comments
	r.GET("/profile/:username", userHandler.Profile) // Author profile feed

	r.GET("/auth/signup", authHandler.ShowSignup)
	r.POST("/auth/signup", authHandler.Signup)
	r.GET("/auth/login", authHandler.ShowLogin)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/profile/edit", userHandler.ShowEdit)
		authorized.POST("/profile/edit", userHandler.Edit)

		authorized.GET("/posts/create", postHandler.ShowCreate)
		authorized.POST("/posts/create", postHandler.Create)
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postHandler.Update)
		authorized.GET("/posts/:id/delete", postHandler.ShowDelete)
		authorized.POST("/posts/:id/delete", postHandler.Delete)

		authorized.POST("/posts/:id/comment", commentHandler.Create)
		authorized.GET("/posts/:id/comment/:comment_id/edit", commentHandler.ShowEdit)
		authorized.POST("/posts/:id/comment/:comment_id/edit", commentHandler.Edit)
		authorized.POST("/posts/:id/comment/:comment_id/delete", commentHandler.Delete)
	}
}
