package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"GoChatter/internal/common"
	"GoChatter/internal/config"
	"GoChatter/internal/dbmysql"
	"GoChatter/internal/di"
)

const appVersion = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	common.ConfigureJWT(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	app, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Mongo.Close(context.Background())

	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration completed")

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      withCORS(newRouter(app)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("🚀 GoChatter listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down GoChatter...")
	app.WSHandler.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("✗ server shutdown: %v", err)
	}
	log.Println("GoChatter stopped")
}

// newRouter mounts every route. Registration, login, file downloads and the
// ws upgrade stay outside the auth middleware; the ws handshake validates
// its token itself because browser clients cannot set headers.
func newRouter(app *di.Application) *mux.Router {
	root := mux.NewRouter()
	root.Use(loggingMiddleware)

	root.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	root.HandleFunc("/", welcome).Methods(http.MethodGet)

	api := root.PathPrefix("/api").Subrouter()
	app.AuthHandler.Register(api)
	app.MediaHandler.RegisterPublic(api)
	api.HandleFunc("/ws", app.WSHandler.ServeWS).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(common.AuthMiddleware)
	app.UserHandler.Register(protected)
	app.FriendshipHandler.Register(protected)
	app.ConversationHandler.Register(protected)
	app.MessageHandler.Register(protected)
	app.ReactionHandler.Register(protected)
	app.MediaHandler.Register(protected)

	return root
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend is running",
		"version": appVersion,
	})
}

func welcome(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Chat App API",
		"version": appVersion,
		"health":  "/health",
		"api":     "/api",
	})
}

// withCORS wraps the whole router so preflight requests get answered even
// when no route matches them.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("✓ %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
