// Command fullstack-blogi runs the bloglist HTTP API: user registration and
// login, token-gated blog CRUD, and aggregate statistics over the listing.
//
// @title Bloglist API
// @version 1.0
// @description Multi-user blog list with token-based ownership of records.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_TOKEN' to authorize
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Zamizmi/fullstack-blogi/auth"
	"github.com/Zamizmi/fullstack-blogi/blogs"
	"github.com/Zamizmi/fullstack-blogi/config"
	"github.com/Zamizmi/fullstack-blogi/db"
	_ "github.com/Zamizmi/fullstack-blogi/docs"
	"github.com/Zamizmi/fullstack-blogi/stats"
	"github.com/Zamizmi/fullstack-blogi/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Wiring: repositories into services, services into handlers. The pool
	// is the single store handle; nothing opens connections on its own.
	userRepo := users.NewPostgresRepository(pool)
	blogRepo := blogs.NewPostgresRepository(pool)

	tokenService := auth.NewTokenService(cfg.Auth)
	authService := auth.NewAuthService(userRepo, tokenService)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(userRepo)
	userHandlers := users.NewUserHandlers(userService)

	blogService := blogs.NewService(blogRepo, userService)
	blogHandlers := blogs.NewHandlers(blogService)

	statsHandlers := stats.NewHandlers(blogService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/login", authHandlers.HandleLogin())

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandlers.HandleCreateUser())
		r.Get("/", userHandlers.HandleListUsers())
	})

	r.Route("/blogs", func(r chi.Router) {
		blogHandlers.RegisterRoutes(r, auth.RequireToken(tokenService))
	})

	r.Get("/stats", statsHandlers.HandleSummary())

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("server stopped gracefully")
}
