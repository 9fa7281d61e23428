package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"api/database"
	"api/handlers"
	"api/logger"
	"api/repositories"
	"api/routes"
	"api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}
	logger.InitLogger()

	port := envOr("PORT", "8080")
	dbPath := envOr("DB_PATH", "./data")
	sessionTTL := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logrus.WithError(err).Fatal("invalid SESSION_TTL")
		}
		sessionTTL = parsed
	}

	db, err := database.Open(database.DefaultConfig(dbPath))
	if err != nil {
		logrus.WithError(err).Fatal("open database")
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	requestRepo := repositories.NewFriendRequestRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	graph := services.NewGraph(userRepo, postRepo, commentRepo, requestRepo)
	authService := services.NewAuthService(userRepo, sessionRepo, sessionTTL)
	userService := services.NewUserService(userRepo, graph)
	postService := services.NewPostService(userRepo, postRepo, graph)
	commentService := services.NewCommentService(userRepo, postRepo, commentRepo, graph)
	friendService := services.NewFriendService(userRepo, requestRepo, graph)
	feedService := services.NewFeedService(userRepo, postRepo, commentRepo)

	router := routes.SetupRoutes(
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(userService),
		handlers.NewPostHandler(postService),
		handlers.NewCommentHandler(commentService),
		handlers.NewFriendHandler(friendService),
		handlers.NewFeedHandler(feedService),
		handlers.NewSystemHandler(),
		handlers.NewAuthMiddleware(authService),
	)

	logrus.WithField("port", port).Info("Server running")
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
