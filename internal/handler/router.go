package handler

import (
	"net/http"

	"github.com/elchananT/personal-coach-demo-website/internal/web"
	"github.com/elchananT/personal-coach-demo-website/pkg/auth"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Base     *Handler
	Pages    *PageHandler
	Bookings *BookingHandler
	Auth     *AuthHandler
	Legal    *LegalHandler
	Limiter  *RateLimiter
	Metrics  http.Handler

	SessionSecret []byte
}

// NewRouter registers every route and wraps the mux in the shared middleware.
func NewRouter(rt Routes) http.Handler {
	limit := func(h http.HandlerFunc) http.Handler {
		if rt.Limiter == nil {
			return h
		}
		return rt.Limiter.Middleware(h)
	}
	staff := auth.RequireStaff(rt.SessionSecret)

	mux := http.NewServeMux()

	// ページ
	mux.HandleFunc("GET /{$}", rt.Pages.Home)
	mux.HandleFunc("GET /booking", rt.Pages.Booking)
	mux.Handle("POST /booking", limit(rt.Pages.SubmitBooking))
	mux.HandleFunc("POST /booking/reset", rt.Pages.ResetBooking)
	mux.Handle("GET /static/", web.Static())
	mux.HandleFunc("GET /legal/{type}", rt.Legal.Page)

	// 公開 API
	mux.HandleFunc("GET /api/health", rt.Base.Health)
	mux.HandleFunc("GET /api/content", rt.Pages.Content)
	mux.HandleFunc("GET /api/legal/{type}", rt.Legal.Markdown)
	mux.Handle("POST /api/bookings", limit(rt.Bookings.Submit))
	mux.HandleFunc("POST /api/bookings/validate", rt.Bookings.Validate)

	// 管理 API
	mux.Handle("POST /api/admin/login", limit(rt.Auth.Login))
	mux.HandleFunc("POST /api/admin/logout", rt.Auth.Logout)
	// 管理ログインが無効ならスタッフ API は登録しない（404）
	if rt.Auth.Enabled() {
		mux.Handle("GET /api/admin/bookings", staff(http.HandlerFunc(rt.Bookings.AdminList)))
		mux.Handle("PATCH /api/admin/bookings/{id}/status", staff(http.HandlerFunc(rt.Bookings.UpdateStatus)))
	}

	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	return RequestLogger(SecurityHeaders(rt.Base.CORS(mux)))
}
