package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"api/handlers"
	"api/monitoring"
)

// SetupRoutes initializes all the application routes.
// The routing logic is isolated here.
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	friendHandler *handlers.FriendHandler,
	feedHandler *handlers.FeedHandler,
	systemHandler *handlers.SystemHandler,
	authMiddleware *handlers.AuthMiddleware,
) http.Handler {
	router := mux.NewRouter()
	router.Use(monitoring.InstrumentHandler)

	// Public routes
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Everything below requires a bearer token
	api := router.PathPrefix("/").Subrouter()
	api.Use(authMiddleware.Middleware)

	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Post routes
	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts", postHandler.Create).Methods("POST")
	api.HandleFunc("/posts/{id}", postHandler.Get).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.Update).Methods("PATCH")
	api.HandleFunc("/posts/{id}", postHandler.Delete).Methods("DELETE")
	api.HandleFunc("/posts/{id}/toggle-like", postHandler.ToggleLike).Methods("PATCH")

	// Comment routes
	api.HandleFunc("/posts/{id}/comment", commentHandler.List).Methods("GET")
	api.HandleFunc("/posts/{id}/comment", commentHandler.Create).Methods("POST")
	api.HandleFunc("/posts/{id}/comment/{commentId}", commentHandler.Update).Methods("PATCH")
	api.HandleFunc("/posts/{id}/comment/{commentId}", commentHandler.Delete).Methods("DELETE")
	api.HandleFunc("/posts/{id}/comment/{commentId}/toggle-like", commentHandler.ToggleLike).Methods("PATCH")

	// Feed routes
	api.HandleFunc("/feed", feedHandler.Direct).Methods("GET")
	api.HandleFunc("/feed/friend-comment", feedHandler.FriendComments).Methods("GET")
	api.HandleFunc("/feed/friend-liked", feedHandler.FriendLiked).Methods("GET")

	// Friend request routes
	api.HandleFunc("/requests", friendHandler.List).Methods("GET")
	api.HandleFunc("/requests", friendHandler.Send).Methods("POST")
	api.HandleFunc("/requests/{id}/accept", friendHandler.Accept).Methods("PATCH")
	api.HandleFunc("/requests/{id}/reject", friendHandler.Reject).Methods("PATCH")

	// User routes
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.Update).Methods("PATCH")
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")
	api.HandleFunc("/users/{id}/friends", userHandler.Friends).Methods("GET")
	api.HandleFunc("/users/{id}/unfriend/{friendId}", userHandler.Unfriend).Methods("DELETE")

	return router
}
