package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codebank/config"
	"codebank/controllers"
	"codebank/database"
	"codebank/repositories"
	"codebank/routes"
	"codebank/services"
	"codebank/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ MongoDB Connection Error: %v", err)
	}

	userRepo := repositories.NewUserRepository(database.GetCollection(db, config.DB_Collection.Users))
	questionRepo := repositories.NewQuestionRepository(database.GetCollection(db, config.DB_Collection.Questions))

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	mailer := utils.NewSMTPMailer(cfg)

	notifier := services.NewNotifier(userRepo, mailer)
	notifier.Start()

	userService := services.NewUserService(userRepo, tokens)
	questionService := services.NewQuestionService(questionRepo, notifier)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Setup API routes
	routes.SetupUserRoutes(r, controllers.NewUserController(userService))
	routes.SetupQuestionRoutes(r, controllers.NewQuestionController(questionService), tokens)

	// Client UI: static assets plus an index fallback for unmatched routes
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/script.js", "./public/script.js")
	r.StaticFile("/style.css", "./public/style.css")
	r.NoRoute(func(c *gin.Context) {
		c.File("./public/index.html")
	})

	srv := &http.Server{
		Addr:    ":" + cfg.PORT,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server Startup Error: %v", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// Let queued notifications drain, then disconnect MongoDB
	notifier.Close()
	database.Disconnect(client)
}
