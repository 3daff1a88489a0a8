package handler

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/elchananT/personal-coach-demo-website/pkg/auth"
)

// adminStaffID is the subject of sessions created with the shared admin password.
const adminStaffID = "admin"

// AuthHandler は管理画面のログイン/ログアウトを扱う
type AuthHandler struct {
	adminPassword string
	sessionSecret []byte
	secureCookies bool
	now           func() time.Time
}

// AuthConfig は AuthHandler の設定
type AuthConfig struct {
	// AdminPassword が空なら管理ログインは無効（404）
	AdminPassword string
	SessionSecret string
	SecureCookies bool
}

// NewAuthHandler は AuthHandler を生成する
func NewAuthHandler(cfg AuthConfig) *AuthHandler {
	return &AuthHandler{
		adminPassword: cfg.AdminPassword,
		sessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		secureCookies: cfg.SecureCookies,
		now:           time.Now,
	}
}

// Enabled reports whether staff login and the staff API are available.
func (h *AuthHandler) Enabled() bool {
	return h != nil && h.adminPassword != ""
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		slog.WarnContext(r.Context(), "admin login rejected", "remote_addr", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	expires := h.now().Add(auth.SessionTTL)
	token := auth.CreateSessionToken(adminStaffID, expires, h.sessionSecret)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	slog.InfoContext(r.Context(), "admin login", "staff_id", adminStaffID)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expires.UTC()})
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
