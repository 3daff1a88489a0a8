package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const staffIDKey contextKey = "staff_id"

// StaffIDFromContext は context から staffID を取得する
func StaffIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(staffIDKey).(string)
	return v, ok && v != ""
}

// WithStaffID は context に staffID をセットする
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}

// RequireStaff verifies the session from the cookie or an
// "Authorization: Bearer <token>" header and stores the staff ID in the context.
func RequireStaff(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeUnauthorized(w, "unauthorized")
				return
			}

			staffID, err := VerifySessionToken(token, sessionSecret, time.Now())
			if err != nil {
				writeUnauthorized(w, "invalid_session")
				return
			}

			ctx := WithStaffID(r.Context(), staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookieName()); err == nil {
		return c.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
