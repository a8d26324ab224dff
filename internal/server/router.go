package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/auth"
	"github.com/linge-maison/boutique/internal/handlers"
	"github.com/linge-maison/boutique/internal/httpx"
	"github.com/linge-maison/boutique/internal/logger"
	"github.com/linge-maison/boutique/internal/mailer"
)

// Options carries the optional collaborators wired at bootstrap.
type Options struct {
	Mailer   mailer.Sender
	NotifyTo string
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, creds auth.Credentials, opts Options) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Storefront ---
	catalog := handlers.NewCatalogHandler(db)
	mux.HandleFunc("GET /{$}", catalog.Home)
	mux.HandleFunc("GET /search", catalog.Search)
	mux.HandleFunc("GET /category/{name}", catalog.Category)
	mux.HandleFunc("GET /product/{id}", catalog.Detail)
	mux.HandleFunc("GET /about", handlers.About)
	mux.HandleFunc("GET /contact", handlers.Contact)
	mux.HandleFunc("GET /privacy", handlers.Privacy)

	checkout := handlers.NewCheckoutHandler(db)
	checkout.Mailer = opts.Mailer
	checkout.NotifyTo = opts.NotifyTo
	mux.HandleFunc("GET /checkout/{id}", checkout.Form)
	mux.HandleFunc("POST /checkout/{id}", checkout.Submit)

	// --- Admin ---
	admin := handlers.NewAdminHandler(db, creds)
	mux.HandleFunc("GET /admin/login", admin.LoginForm)
	mux.HandleFunc("POST /admin/login", admin.Login)
	mux.HandleFunc("GET /admin/logout", admin.Logout)

	gate := func(h http.HandlerFunc) http.Handler { return auth.RequireAdmin(h) }
	mux.Handle("GET /admin", gate(admin.Panel))
	mux.Handle("GET /admin/add", gate(admin.AddForm))
	mux.Handle("POST /admin/add", gate(admin.Add))
	mux.Handle("GET /admin/edit/{id}", gate(admin.EditForm))
	mux.Handle("POST /admin/edit/{id}", gate(admin.Edit))
	mux.Handle("POST /admin/delete/{id}", gate(admin.Delete))

	offers := handlers.NewOfferHandler(db)
	mux.Handle("GET /admin/offer/add", gate(offers.AddForm))
	mux.Handle("POST /admin/offer/add", gate(offers.Add))
	mux.Handle("GET /admin/offer/edit/{id}", gate(offers.EditForm))
	mux.Handle("POST /admin/offer/edit/{id}", gate(offers.Edit))
	mux.Handle("POST /admin/offer/delete/{id}", gate(offers.Delete))

	requests := handlers.NewRequestHandler(db)
	mux.Handle("GET /admin/comments", gate(requests.List))
	mux.Handle("GET /admin/toggle_request/{id}", gate(requests.Toggle))
	mux.Handle("GET /admin/export_comments_excel", gate(requests.ExportExcel))

	// --- Static assets ---
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return withRecover(withLogging(mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Get().Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Get().Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				http.Error(w, "erreur interne", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
