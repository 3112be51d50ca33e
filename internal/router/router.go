package router

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"dog-knowledge-base/internal/adapters/dogapi"
	mem "dog-knowledge-base/internal/adapters/storage/memory"
	_ "dog-knowledge-base/internal/docs" // registro del spec swagger
	"dog-knowledge-base/internal/domain/breeds"
	"dog-knowledge-base/internal/domain/feedback"
	"dog-knowledge-base/internal/middleware"
	"dog-knowledge-base/internal/platform/logger"
	"dog-knowledge-base/internal/ports/source"
)

type Options struct {
	// Opcional: fuente upstream de razas. Si es nil se construye el cliente
	// TheDogAPI real con config de env (para tests se inyecta un stub).
	Source source.BreedSource

	// Opcional: logger para el middleware de requests. nil => sin logs.
	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.SessionContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Si no te pasan fuente explícita, arma el cliente real por env.
	// Config inválida corta acá, en el arranque: un router sin fuente no
	// puede servir el catálogo.
	src := opts.Source
	if src == nil {
		client, err := dogapi.NewClient(dogapi.Config{
			BaseURL: os.Getenv("DOG_API_BASE_URL"),
			APIKey:  os.Getenv("DOG_API_KEY"),
		})
		if err != nil {
			return nil, fmt.Errorf("router: dogapi client: %w", err)
		}
		src = client
	}

	// Servicios por módulo
	catalog := breeds.NewCatalog(src)
	feedbackSvc := feedback.NewService(mem.NewFeedbackRepo())

	// Rutas por módulo
	breeds.RegisterRoutes(r, catalog)
	feedback.RegisterRoutes(r, feedbackSvc)

	return r, nil
}
