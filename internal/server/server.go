package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/config"
	"github.com/cinedelices/backend/internal/api"
	"github.com/cinedelices/backend/internal/middleware"
	"github.com/cinedelices/backend/internal/service"
)

// Server wires the services and handlers into an HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New builds the server. A nil redisClient disables rate limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.FrontendURL))

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	interactionService := service.NewInteractionService(db)
	userService := service.NewUserService(db)
	metadataService := service.NewMetadataService(db)
	tmdbService := service.NewTMDBService(cfg.TMDBAPIKey)
	llmService := service.NewLLMService(cfg.MistralAPIKey, cfg.MistralAPIURL, cfg.MistralModel)

	handlers := &api.Handlers{
		Auth:        api.NewAuthHandler(authService),
		Recipe:      api.NewRecipeHandler(recipeService, authService),
		Interaction: api.NewInteractionHandler(interactionService, authService),
		User:        api.NewUserHandler(userService, authService),
		Metadata:    api.NewMetadataHandler(metadataService, authService),
		TMDB:        api.NewTMDBHandler(tmdbService),
		LLM:         api.NewLLMHandler(llmService, authService),
		Admin:       api.NewAdminHandler(recipeService, userService, metadataService, authService),
	}

	var apiLimiter, authLimiter *middleware.RateLimiter
	if redisClient != nil {
		apiLimiter = middleware.NewAPIRateLimiter(redisClient, cfg.RateLimitMax)
		authLimiter = middleware.NewAuthRateLimiter(redisClient, cfg.RateLimitAuthMax)
	}

	api.RegisterRoutes(router, handlers, authService, apiLimiter, authLimiter)

	return &Server{
		router: router,
		cfg:    cfg,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
