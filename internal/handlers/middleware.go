package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gitlab.com/exreview.net/internal/domain"
	"gitlab.com/exreview.net/internal/global/ctxdata"
)

type MiddlewareProvider struct {
	SecretOption string
}

func New() *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: os.Getenv("JWT_SECRET"),
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

// ResolveActor attaches the acting user to the request context. A missing
// or invalid token yields the guest sentinel rather than a 401: the guest
// rejection messages are operation-specific and owned by the services.
func (m *MiddlewareProvider) ResolveActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := m.actorFromRequest(r)
		ctx := ctxdata.WithUser(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *MiddlewareProvider) actorFromRequest(r *http.Request) *domain.Users {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return domain.GuestUser()
	}

	// Extract token from "Bearer <token>"
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.secret(), nil
	})
	if err != nil || !token.Valid {
		return domain.GuestUser()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.GuestUser()
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return domain.GuestUser()
	}

	userName, _ := claims["name"].(string)
	user := &domain.Users{
		ID:       userID,
		UserName: userName,
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		user.Email = &email
	}

	return user
}
