package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"botgate/internal/blacklist"
	"botgate/internal/config"
	"botgate/internal/dataType"
	"botgate/internal/geo"
	"botgate/internal/pipeline"
	"botgate/internal/ratelimit"
	"botgate/internal/server"
	"botgate/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	var basePath string
	flag.StringVar(&basePath, "prefix", "", "Config file base path")
	flag.Parse()

	// Optional .env overrides
	_ = godotenv.Load()
	if env := os.Getenv("BOTGATE_PREFIX"); env != "" && basePath == "" {
		basePath = env
	}

	cfg, err := config.LoadConfig(basePath)
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}
	if env := os.Getenv("BOTGATE_PORT"); env != "" {
		cfg.Port = env
	}

	if err := cfg.EnsureFiles(); err != nil {
		log.Fatalf("Bootstrap data files failed: %v", err)
	}

	rateStore, err := buildRateStore(cfg)
	if err != nil {
		log.Fatalf("Open rate store failed: %v", err)
	}

	provider, err := buildGeoProvider(cfg)
	if err != nil {
		log.Fatalf("Open geo provider failed: %v", err)
	}

	lists := blacklist.NewStore(cfg.Paths.AgentsBlacklist, cfg.Paths.IPsBlacklist, cfg.Paths.IPsRangeBlacklist)
	limiter := ratelimit.NewLimiter(rateStore, cfg.RateLimit.MaxRequests, cfg.RateLimit.TimeFrame)
	audit := utils.NewAuditLogger(cfg.Paths.Logs, cfg.Paths.Visits, filepath.Join(cfg.LogPath, "botgate.log"))

	pl := pipeline.New(cfg, lists, limiter, geo.NewResolver(provider), audit)

	log.Printf("Ready to start server on port %s", cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.StartServer(cfg, pl)
	}()

	select {
	case <-stop:
		log.Println("Stopping server...")
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}

	log.Println("Server stopped")
}

func buildRateStore(cfg *config.Config) (ratelimit.Store, error) {
	switch cfg.RateLimit.Store {
	case dataType.RateStoreMemory:
		return ratelimit.NewMemoryStore(), nil
	case dataType.RateStoreRedis:
		return ratelimit.NewRedisStore(cfg.RateLimit.RedisURL)
	default:
		return ratelimit.NewFileStore(cfg.Paths.RequestLog), nil
	}
}

func buildGeoProvider(cfg *config.Config) (geo.Provider, error) {
	if cfg.GeoFilter.Provider == dataType.GeoProviderMMDB && cfg.GeoFilter.MMDBPath != "" {
		return geo.OpenMMDB(cfg.GeoFilter.MMDBPath)
	}
	return geo.NewAPIProvider(), nil
}
