package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// RouterOptions configures the HTTP surface around the handlers.
type RouterOptions struct {
	CORSOrigins []string
	// Static is served under /static/ when set.
	Static fs.FS
}

// Routes builds the application router.
func (d *Deps) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.logger()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	// Pages
	r.Get("/", d.HandleWeek)
	r.Get("/days/{day}", d.HandleDay)
	r.Get("/settings", d.HandleSettingsPage)
	r.Get("/partials/days/{day}", d.HandleDayEntriesPartial)

	r.Get("/healthz", d.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/schedule", d.HandleGetSchedule)
		r.Get("/catalog", d.HandleGetCatalog)
		r.Get("/summary", d.HandleGetSummary)

		r.Route("/days/{day}/exercises", func(r chi.Router) {
			r.Post("/", d.HandleAddExercise)
			r.Delete("/{id}", d.HandleDeleteExercise)
			r.Patch("/{id}", d.HandlePatchExercise)
			r.Post("/{id}/toggle", d.HandleToggleExercise)
		})

		r.Get("/settings", d.HandleGetSettings)
		r.Put("/settings", d.HandleUpdateSettings)

		r.Get("/export/{format}", d.HandleExport)
	})

	return r
}

// RequestLogger logs one line per request with zap.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("elapsed", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
