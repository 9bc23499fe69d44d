package main

import (
	"PassVault/internal/config"
	"PassVault/internal/handlers"
	"PassVault/internal/middleware"
	"PassVault/internal/repo"
	"PassVault/internal/service"
	"PassVault/internal/storage"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// blob-хранилище для изображений; без MinIO сервер работает,
	// но image-записи остаются без подписанных ссылок
	var blobs storage.BlobStore = storage.Unconfigured{}
	if cfg.MinioEndpoint != "" {
		minioStore, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			sugar.Fatalw("failed to initialize blob storage", "error", err)
		}
		if err := minioStore.EnsureBucket(ctx); err != nil {
			sugar.Fatalw("failed to ensure bucket", "bucket", cfg.MinioBucket, "error", err)
		}
		blobs = minioStore
	} else {
		sugar.Warnw("MinIO is not configured, image credentials will not be signed")
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	credentialRepo := repo.NewCredentialRepository(gormDB)
	credentialService, err := service.NewCredentialService(credentialRepo, blobs, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize credential service", "error", err)
	}

	h := handlers.NewHandler(userService, credentialService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
