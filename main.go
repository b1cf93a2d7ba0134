package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aqarhub/internal/cache"
	intconfig "aqarhub/internal/config"
	router "aqarhub/internal/http"
	"aqarhub/internal/jobs"
	"aqarhub/internal/storage"
	"aqarhub/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	utils.InitLogger(env.LogLevel, env.LogFile)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB()
	defer intconfig.CloseDB()

	if env.RedisURL != "" {
		inv, err := cache.NewInvalidator(env.RedisURL, env.CachePrefix)
		if err != nil {
			utils.Log.Warnf("redis unavailable, cache invalidation disabled: %v", err)
		} else {
			intconfig.Cache = inv
		}
	}

	if env.StorageEndpoint != "" {
		store, err := storage.NewMediaStore(storage.Config{
			Endpoint:  env.StorageEndpoint,
			AccessKey: env.StorageAccessKey,
			SecretKey: env.StorageSecretKey,
			Bucket:    env.StorageBucket,
			UseSSL:    env.StorageUseSSL,
			PublicURL: env.StoragePublicURL,
		})
		if err != nil {
			utils.Log.Warnf("media storage unavailable, uploads disabled: %v", err)
		} else {
			intconfig.Media = store
		}
	}

	scheduler := jobs.StartRenormalizer(intconfig.DB, env.RenormalizeEvery)
	defer scheduler.Stop()

	// Router (Gin engine)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Fatalf("server shutdown failed: %v", err)
	}

	utils.Log.Info("server stopped cleanly")
}
