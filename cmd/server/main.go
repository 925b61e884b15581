package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"vsl-api/cmd/config"
	"vsl-api/internal/logging"
	"vsl-api/pkg/auth"
	"vsl-api/pkg/handlers"
	"vsl-api/pkg/s3"
	"vsl-api/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogVerbosity, os.Stderr)

	users, videos, cleanup, err := buildStores(cfg)
	if err != nil {
		logger.Error("opening store failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	gateway, err := s3.NewGateway(s3.Options{
		Endpoint:        cfg.Endpoint(),
		Region:          cfg.StorageRegion,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		Bucket:          cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	})
	if err != nil {
		logger.Error("creating object store client failed", "error", err)
		os.Exit(1)
	}

	h := &handlers.Handler{
		Users:          users,
		Videos:         videos,
		Tokens:         auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Objects:        gateway,
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	if cfg.LogVerbosity != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	h.Register(r)

	logger.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildStores(cfg config.Config) (store.UserStore, store.VideoStore, func(), error) {
	if cfg.StoreDriver == "sqlite" {
		gs, err := store.OpenGorm(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return gs, gs, func() { gs.Close() }, nil
	}

	admin, err := store.SeedAdmin()
	if err != nil {
		return nil, nil, nil, err
	}
	users := store.NewMemoryUserStore(admin)
	return users, store.NewMemoryVideoStore(), func() {}, nil
}
