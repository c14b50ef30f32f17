/*
Package server implements the application's network transport layer. It is
the presentation shell around the engine: it binds plain structured inputs,
calls the pure engine functions, and renders plain structured outputs. It
owns no engine state beyond the read-only catalog.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"nutrigenie/internal/catalog"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// Server holds the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// catalog is the food dataset, loaded once at startup and read-only
	// thereafter — safe to share across concurrent requests.
	catalog *catalog.Catalog
}

// NewServer initializes a Server and returns a configured *http.Server.
// Configuration comes from environment variables (PORT, CATALOG_PATH) with
// sensible defaults, and network timeouts are production-ready.
func NewServer() *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	newApp := &Server{
		port:    port,
		catalog: loadCatalog(),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(),
		IdleTimeout:  time.Minute,             // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second,        // Maximum duration for reading the entire request.
		WriteTimeout: 30 * time.Second,        // Maximum duration before timing out writes of the response.
	}

	return server
}

// loadCatalog loads the food dataset from CATALOG_PATH when set, falling back
// to the embedded seed dataset. This is the process's single I/O point for
// food data, and it runs once before the server accepts traffic.
func loadCatalog() *catalog.Catalog {
	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		c := catalog.Default()
		log.Info().Int("foods", c.Len()).Msg("Using built-in food catalog")
		return c
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to load catalog file, falling back to built-in dataset")
		return catalog.Default()
	}
	return c
}
