package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/matchday-api/internal/application/auth"
	"github.com/matchday-api/internal/application/catalog"
	"github.com/matchday-api/internal/application/order"
	"github.com/matchday-api/internal/config"
	"github.com/matchday-api/internal/transport/http/handler"
	appmiddleware "github.com/matchday-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)
	adminMw := appmiddleware.AdminToken(cfg.AdminAccessToken)

	authSvc := auth.NewService(auth.ServiceDeps{
		Users:        deps.Users,
		Codes:        deps.Codes,
		Resets:       deps.Resets,
		Mailer:       deps.Mailer,
		OTPTTL:       time.Duration(cfg.OTPExpiryMinutes) * time.Minute,
		ResetTTL:     time.Duration(cfg.ResetTokenExpiryHrs) * time.Hour,
		PublicAppURL: cfg.PublicAppURL,
	})
	orderSvc := order.NewService(deps.Orders, deps.Notifier, cfg.SheetsConfigured(), cfg.SheetURL())
	catalogSvc := catalog.NewService(deps.Images)

	healthH := handler.NewHealthHandler(orderSvc.Source())
	authH := handler.NewAuthHandler(authSvc)
	pwH := handler.NewPasswordResetHandler(authSvc)
	verifH := handler.NewVerificationHandler(authSvc, cfg.AppEnv != "production")
	orderH := handler.NewOrderHandler(orderSvc, cfg.AdminAccessToken)
	productH := handler.NewProductHandler(catalogSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.Route("/auth", func(r chi.Router) {
			r.With(sensitiveRL.Limit).Post("/register", authH.Register)
			r.With(sensitiveRL.Limit).Post("/login-otp", authH.LoginOTP)
			r.Post("/verify-login-otp", authH.VerifyLoginOTP)
			r.With(sensitiveRL.Limit).Post("/forgot-password", pwH.Forgot)
			r.Post("/reset-password", pwH.Reset)
			r.With(sensitiveRL.Limit).Post("/send-verification", verifH.Send)
			r.Post("/verify-code", verifH.Verify)
		})

		r.Post("/orders", orderH.Create)
		r.With(adminMw).Get("/orders", orderH.List)

		r.Get("/products", productH.List)
		r.Get("/products/{id}", productH.Get)
		r.Get("/products/{id}/image", productH.GetImage)
		r.With(adminMw).Post("/products/{id}/image", productH.UploadImage)
	})

	return r
}
