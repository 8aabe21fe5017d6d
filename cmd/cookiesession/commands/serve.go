package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cookiesession/pkg/httpserver"
	"github.com/dmitrymomot/cookiesession/pkg/logger"
	"github.com/dmitrymomot/cookiesession/pkg/requestid"
	"github.com/dmitrymomot/cookiesession/pkg/session"
)

const healthPath = "/health"

func serveCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		Long: `Run a demo server with two sub-applications mounted at /{application}.
Both share one session cookie: /{application}/set-session stores the
application name, /{application}/get-session reads it from either side and
/{application}/delete-session removes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			sessions, err := session.NewFromConfig(cfg.Session,
				session.WithLogger(log),
				session.WithSkipper(func(r *http.Request) bool { return r.URL.Path == healthPath }),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, newRouter(sessions, log))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HTTP_ADDR or :8080)")
	return cmd
}

func newRouter(sessions *session.Manager, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Middleware)

	r.Get(healthPath, httpserver.HealthCheckHandler(log))

	r.Route("/{application}", func(r chi.Router) {
		r.Get("/set-session", func(w http.ResponseWriter, r *http.Request) {
			session.MustFromContext(r.Context()).Set("application", chi.URLParam(r, "application"))
			writeJSON(r.Context(), log, w, "Session set")
		})
		r.Get("/get-session", func(w http.ResponseWriter, r *http.Request) {
			app, _ := session.MustFromContext(r.Context()).Get("application")
			writeJSON(r.Context(), log, w, app)
		})
		r.Get("/delete-session", func(w http.ResponseWriter, r *http.Request) {
			session.MustFromContext(r.Context()).Delete("application")
			writeJSON(r.Context(), log, w, "Session deleted")
		})
	})

	return r
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, message any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"message": message}); err != nil {
		log.ErrorContext(ctx, "failed to write response", logger.Error(err))
	}
}
