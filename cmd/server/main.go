// @title           Sortex API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SimoSabev/sortex/internal/api"
	"github.com/SimoSabev/sortex/internal/bins"
	"github.com/SimoSabev/sortex/internal/config"
	"github.com/SimoSabev/sortex/internal/database"
	"github.com/SimoSabev/sortex/internal/storage"
	"github.com/SimoSabev/sortex/internal/websocket"

	_ "github.com/SimoSabev/sortex/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	objStorage, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	var binSource bins.Source
	if cfg.Bins.UseFixture {
		binSource = bins.NewStaticSource(bins.Fixture())
		log.Println("Serving recycling bins from the static fixture")
	} else {
		binSource = bins.NewOverpassClient(cfg.Bins.OverpassURL)
		log.Printf("Fetching recycling bins from %s", cfg.Bins.OverpassURL)
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool, wsHub)
	server := api.NewServer(cfg, store, objStorage, binSource, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/recycling-bins", server.RecyclingBinsHandler)
		r.With(server.OptionalAuthMiddleware).Get("/leaderboard", server.LeaderboardHandler)

		r.Group(func(r chi.Router) {
			r.Use(server.AuthMiddleware)
			r.Get("/dashboard", server.DashboardHandler)
			r.Get("/uploads", server.ListUploadsHandler)
			r.Post("/uploads", server.SubmitUploadHandler)
			r.Get("/events", server.GetEventsHandler)
		})
	})

	log.Println("Starting server on port :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	if cfg.Storage.Driver == "s3" {
		return storage.NewS3Storage(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region)
	}
	return storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.PublicURL)
}
