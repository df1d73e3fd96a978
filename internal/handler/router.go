package handler

import (
	"net/http"

	"topictalk/backend/internal/ai"
	"topictalk/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all API routes wired to the given
// provider registry.
func NewRouter(providers ai.Registry) *gin.Engine {
	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	chatroomHandler := NewChatroomHandler(providers)
	messageHandler := NewMessageHandler(providers)

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", RegisterUser)
			authRoutes.POST("/login", LoginUser)
		}

		// Everything else requires a session
		protected := api.Group("")
		protected.Use(auth.AuthMiddleware())
		{
			protected.PUT("/profile", UpdateProfile)

			topicRoutes := protected.Group("/topics")
			{
				topicRoutes.POST("", CreateTopic)
				topicRoutes.GET("", GetTopics)
				topicRoutes.GET("/:id", GetTopicByID)
				topicRoutes.PUT("/:id", UpdateTopic)
				topicRoutes.DELETE("/:id", DeleteTopic)
			}

			chatroomRoutes := protected.Group("/chatrooms")
			{
				chatroomRoutes.POST("", chatroomHandler.CreateChatroom)
				chatroomRoutes.GET("", chatroomHandler.GetChatrooms)
				chatroomRoutes.GET("/:id", chatroomHandler.GetChatroomByID)
				chatroomRoutes.PUT("/:id", chatroomHandler.UpdateChatroom)
				chatroomRoutes.DELETE("/:id", chatroomHandler.DeleteChatroom)
			}

			messageRoutes := protected.Group("/messages")
			{
				messageRoutes.POST("", messageHandler.SendMessage)
				messageRoutes.GET("", messageHandler.GetMessages)
			}
		}
	}

	return router
}
