package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/mon-refugee/membership-api/internal/backup"
	"github.com/mon-refugee/membership-api/internal/config"
	"github.com/mon-refugee/membership-api/internal/database"
	"github.com/mon-refugee/membership-api/internal/delivery"
	"github.com/mon-refugee/membership-api/internal/handlers"
	"github.com/mon-refugee/membership-api/internal/mailer"
	"github.com/mon-refugee/membership-api/internal/pdfgen"
	"github.com/mon-refugee/membership-api/internal/repository"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Artifact directories must exist before the first submission
	for _, dir := range []string{cfg.PDFDir, cfg.QRDir, cfg.UploadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// The logo is optional; the renderer skips it when absent
	logo, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		log.Printf("Logo not loaded from %s: %v", cfg.LogoPath, err)
	}

	// Initialize Components
	repo := repository.NewSubmissions(db)
	renderer := &pdfgen.Renderer{Logo: logo}
	dispatcher := &delivery.Dispatcher{
		PDFDir:  cfg.PDFDir,
		QRDir:   cfg.QRDir,
		BaseURL: cfg.BaseURL,
		Mailer:  mailer.NewSMTPMailer(cfg),
	}

	// Initialize Handlers
	submissionHandler := handlers.NewSubmissionHandler(cfg, repo, renderer, dispatcher)
	adminHandler := handlers.NewAdminHandler(repo, backup.NewSheetsBackup(cfg))

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, submissionHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
