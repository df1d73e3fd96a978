package main

import (
	"context"
	"fmt"
	"log"

	"topictalk/backend/internal/ai"
	"topictalk/backend/internal/config"
	"topictalk/backend/internal/database"
	"topictalk/backend/internal/handler"

	// Swagger imports
	_ "topictalk/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           TopicTalk API
// @version         1.0
// @description     This is the API for the TopicTalk service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	ctx := context.Background()

	openAI, err := ai.NewOpenAIProvider(ctx, config.AppConfig.OpenAIAPIKey, "gpt-4", config.AppConfig.OpenAIBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI provider: %v", err)
	}
	claude, err := ai.NewClaudeProvider(ctx, config.AppConfig.AnthropicAPIKey, "claude-3-5-sonnet-20241022", config.AppConfig.AnthropicBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize Claude provider: %v", err)
	}

	providers := ai.Registry{
		"gpt-4":  openAI,
		"claude": claude,
	}

	router := handler.NewRouter(providers)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", config.AppConfig.ServerAddr)
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
