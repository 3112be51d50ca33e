package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dog-knowledge-base/internal/platform/logger"
	"dog-knowledge-base/internal/router"
)

// @title Dog Knowledge Base API
// @version 1.0
// @description Buscador de razas de perro: catálogo upstream normalizado, búsqueda por nombre y feedback por sesión.
// @BasePath /
func main() {
	// .env.local es opcional (solo dev); env real siempre gana.
	_ = godotenv.Load(".env.local")

	appLog := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r, err := router.NewRouter(router.Options{Logger: appLog})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
