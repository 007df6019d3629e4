package main

import (
	"fmt"
	"log"
	"net/http"

	"dsatutor/config"
	"dsatutor/db"
	"dsatutor/handlers"
	"dsatutor/services"

	"github.com/gorilla/mux"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/cohere"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	userRepo, err := db.NewPostgresUserRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize user database: %v", err)
	}
	defer userRepo.Close()

	chatRepo, err := db.NewPostgresChatRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize chat database: %v", err)
	}
	defer chatRepo.Close()

	llm, err := newLLM(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(authService)

	chatService := services.NewChatService(chatRepo, llm)
	chatHandler := handlers.NewChatHandler(chatService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	authHandler.RegisterRoutes(router)

	protected := router.NewRoute().Subrouter()
	protected.Use(handlers.AuthMiddleware(authService))
	chatHandler.RegisterRoutes(protected)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// newLLM builds the generative-API client once at startup; services only
// ever see the llms.Model interface.
func newLLM(cfg *config.Config) (llms.Model, error) {
	switch cfg.LLMProvider {
	case "cohere":
		if cfg.CohereAPIKey == "" {
			return nil, fmt.Errorf("COHERE_API_KEY environment variable is required")
		}
		model := cfg.LLMModel
		if model == "" {
			model = "command-r"
		}
		return cohere.New(
			cohere.WithToken(cfg.CohereAPIKey),
			cohere.WithModel(model),
		)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		model := cfg.LLMModel
		if model == "" {
			model = "gpt-4o-mini"
		}
		return openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(model),
		)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
