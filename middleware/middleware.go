package middleware

import (
	"context"
	"net/http"

	"merma/globals"
	"merma/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Email     string `json:"email"`
	UserID    int    `json:"userId"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// WithSession resolves the X-Session-ID header against the session manager
// and stores the session's state container in the request context. Requests
// without a known session are rejected: every cart, favorites and checkout
// route needs one.
func WithSession(mgr *session.Manager, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sid := r.Header.Get("X-Session-ID")
		if sid == "" {
			http.Error(w, "Missing session", http.StatusBadRequest)
			return
		}
		store, ok := mgr.Get(sid)
		if !ok {
			http.Error(w, "Unknown session", http.StatusBadRequest)
			return
		}
		ctx := session.NewContext(r.Context(), store)
		ctx = context.WithValue(ctx, globals.SessionIDKey, sid)
		next(w, r.WithContext(ctx), ps)
	}
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := claimsFromHeader(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		// Store UserID in context
		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

func claimsFromHeader(r *http.Request) (*Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return nil, errMissingToken
	}
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, errBadTokenFormat
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
