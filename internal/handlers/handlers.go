package handlers

import (
	"PassVault/internal/config"
	"PassVault/internal/middleware"
	"PassVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	credentialService *service.CredentialService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	credentialHandler := NewCredentialHandler(credentialService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Credential routes
	r.Get("/api/credentials", credentialHandler.List)
	r.Post("/api/credentials", credentialHandler.Add)
	r.Get("/api/credentials/{id}", credentialHandler.Get)
	r.Put("/api/credentials/{id}", credentialHandler.Update)
	r.Delete("/api/credentials/{id}", credentialHandler.Remove)
	r.Post("/api/blobs/upload", credentialHandler.UploadImage)

	return &Handler{Router: r}
}
