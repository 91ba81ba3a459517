package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mon-refugee/membership-api/internal/config"
)

// Admin gates the admin routes behind HTTP Basic auth checked against
// the two configured credential values.
func Admin(cfg *config.Config) func(http.Handler) http.Handler {
	return middleware.BasicAuth("Admin Area", map[string]string{
		cfg.AdminUser: cfg.AdminPass,
	})
}
