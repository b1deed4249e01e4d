package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careadmin/internal/admin"
	"careadmin/internal/api"
	"careadmin/internal/audit"
	"careadmin/internal/auth"
	"careadmin/internal/booking"
	"careadmin/internal/job"
	"careadmin/internal/notify"
	"careadmin/internal/payment"
	"careadmin/internal/telemetry"
	"careadmin/internal/transition"
	"careadmin/internal/user"
	"careadmin/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", telemetry.Handler())

	adminRepo := admin.NewRepository(deps.DB)
	auditRepo := audit.NewRepository(deps.DB)
	recorder := audit.NewRecorder(auditRepo)

	// Emails go out only when SMTP is configured; dev setups just log.
	var userNotifier transition.Notifier = notify.LogNotifier{}
	if deps.Cfg.SMTP.Host != "" {
		userNotifier = notify.NewEmailNotifier(deps.Cfg.SMTP)
	}

	jobRepo := job.NewRepository(deps.DB)
	jobHandlers := job.Handlers{
		Repo: jobRepo,
		Engine: &transition.Executor{
			Kind:  "job",
			Repo:  job.Store{Repo: jobRepo},
			Audit: recorder,
		},
	}

	bookingRepo := booking.NewRepository(deps.DB)
	bookingHandlers := booking.Handlers{
		Repo: bookingRepo,
		Engine: &transition.Executor{
			Kind:  "booking",
			Repo:  booking.Store{Repo: bookingRepo},
			Audit: recorder,
		},
	}

	userRepo := user.NewRepository(deps.DB)
	userHandlers := user.Handlers{
		Repo: userRepo,
		Engine: &transition.Executor{
			Kind:     "user",
			Repo:     user.Store{Repo: userRepo},
			Audit:    recorder,
			Notifier: userNotifier,
		},
	}

	paymentRepo := payment.NewRepository(deps.DB)
	paymentHandlers := payment.Handlers{
		Repo: paymentRepo,
		Engine: &transition.Executor{
			Kind:  "payment",
			Repo:  payment.Store{Repo: paymentRepo},
			Audit: recorder,
		},
	}

	authHandlers := auth.Handlers{Cfg: deps.Cfg, Admins: adminRepo}
	auditHandlers := audit.Handlers{Repo: auditRepo}

	// v1
	r.Route("/v1", func(r chi.Router) {
		// The back office frontend runs on a separate domain.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AdminAllowedOrigins,
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Admin-Email"},
			MaxAgeSeconds:  600,
		}))

		r.Post("/auth/login", authHandlers.Login)

		r.Group(func(r chi.Router) {
			// Production: bearer session tokens issued by /auth/login.
			// Dev: falls back to X-Admin-Email if Authorization is missing.
			r.Use(api.AdminSessionAuth(deps.Cfg, adminRepo))

			r.Get("/jobs", jobHandlers.List)
			r.Get("/jobs/{id}", jobHandlers.Get)
			r.Post("/jobs/{id}/approve", jobHandlers.Approve)
			r.Post("/jobs/{id}/reject", jobHandlers.Reject)
			r.Post("/jobs/{id}/cancel", jobHandlers.Cancel)
			r.Post("/jobs/{id}/complete", jobHandlers.Complete)
			r.Post("/jobs/{id}/reopen", jobHandlers.Reopen)

			r.Get("/bookings", bookingHandlers.List)
			r.Get("/bookings/{id}", bookingHandlers.Get)
			r.Post("/bookings/{id}/confirm", bookingHandlers.Confirm)
			r.Post("/bookings/{id}/start", bookingHandlers.Start)
			r.Post("/bookings/{id}/complete", bookingHandlers.Complete)
			r.Post("/bookings/{id}/cancel", bookingHandlers.Cancel)

			r.Get("/users", userHandlers.List)
			r.Get("/users/{id}", userHandlers.Get)
			r.Patch("/users/{id}/status", userHandlers.PatchStatus)
			r.Post("/users/bulk-status", userHandlers.BulkStatus)

			r.Get("/payments", paymentHandlers.List)
			r.Get("/payments/summary", paymentHandlers.Summary)
			r.Get("/payments/{id}", paymentHandlers.Get)
			r.Post("/payments/{id}/mark-paid", paymentHandlers.MarkPaid)
			r.Post("/payments/{id}/refund", paymentHandlers.Refund)

			r.Get("/audit", auditHandlers.List)
		})
	})

	return r
}
