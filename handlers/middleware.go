package handlers

import (
	"context"
	"net/http"

	"api/models"
	"api/services"
)

type ctxKey int

const requesterKey ctxKey = iota

// AuthMiddleware resolves the bearer token to a requester id and stores it in
// the request context. Everything behind it can assume a valid requester.
type AuthMiddleware struct {
	Auth *services.AuthService
}

func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{Auth: auth}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		requester, err := m.Auth.Authenticate(r.Context(), token)
		if err != nil {
			respondError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), requesterKey, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requesterID returns the authenticated requester set by AuthMiddleware.
func requesterID(r *http.Request) models.ID {
	id, _ := r.Context().Value(requesterKey).(models.ID)
	return id
}
