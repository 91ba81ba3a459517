package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mon-refugee/membership-api/internal/auth"
	"github.com/mon-refugee/membership-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, submissionHandler *SubmissionHandler, adminHandler *AdminHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Post("/submit", submissionHandler.HandleSubmit)

	// Generated artifacts and uploads, each retrievable by static path
	serveDir(r, "/pdfs", cfg.PDFDir)
	serveDir(r, "/qr_codes", cfg.QRDir)
	serveDir(r, "/uploads", cfg.UploadDir)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Admin(cfg))
		r.Get("/admin", adminHandler.HandleDashboard)
		r.Get("/admin/analytics", adminHandler.HandleAnalytics)
		r.Get("/export", adminHandler.HandleExport)
		r.Get("/backup", adminHandler.HandleBackup)
	})
}

func serveDir(r chi.Router, prefix, dir string) {
	fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(dir)))
	r.Get(prefix+"/*", fs.ServeHTTP)
}
