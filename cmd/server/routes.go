package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"artisan-connect.backend/internal/interfaces/http/handlers"
	"artisan-connect.backend/internal/interfaces/http/middleware"
	"artisan-connect.backend/pkg/metrics"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	adminHandler     *handlers.AdminHandler
	craftHandler     *handlers.CraftHandler
	nftHandler       *handlers.NFTHandler
	communityHandler *handlers.CommunityHandler
	authMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, except me/logout)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		}

		// Craft routes (protected)
		crafts := v1.Group("/crafts")
		crafts.Use(d.authMiddleware)
		{
			crafts.POST("/upload", d.craftHandler.Upload)
			crafts.GET("/mine", d.craftHandler.ListMine)
		}

		// Mint route (protected)
		v1.POST("/nft/mint", d.authMiddleware, d.nftHandler.Mint)

		// Community read routes (public)
		community := v1.Group("/community")
		{
			community.GET("/posts", d.communityHandler.Posts)
			community.GET("/stats", d.communityHandler.Stats)
			community.GET("/artisans", d.communityHandler.Artisans)
		}

		// Admin routes; create-admin stays public but is gated by the
		// shared admin code.
		admin := v1.Group("/admin")
		{
			admin.POST("/create-admin", d.adminHandler.CreateAdmin)

			protected := admin.Group("")
			protected.Use(d.authMiddleware, middleware.AdminOnly())
			{
				protected.GET("/users", d.adminHandler.ListUsers)
				protected.GET("/posts", d.adminHandler.ListPosts)
				protected.POST("/users", d.adminHandler.CreateUser)
				protected.POST("/user-action", d.adminHandler.UserAction)
				protected.POST("/post-action", d.adminHandler.PostAction)
			}
		}
	}
}
