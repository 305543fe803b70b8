package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Antonov7512/drinkkiosk/api"
	"github.com/Antonov7512/drinkkiosk/config"
	"github.com/Antonov7512/drinkkiosk/internal/images"
	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/Antonov7512/drinkkiosk/internal/service/guest"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, catalogSvc catalogsvc.CatalogUseCase, guestSvc guest.GuestUseCase, imageStore images.Store) error {
	srv := newServer(cfg, catalogSvc, guestSvc, imageStore)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(cfg *config.Config, catalogSvc catalogsvc.CatalogUseCase, guestSvc guest.GuestUseCase, imageStore images.Store) *http.Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	guestHandler := api.NewGuestHandler(guestSvc, catalogSvc)
	adminHandler := api.NewAdminHandler(catalogSvc, imageStore)

	router.GET("/api/config", guestHandler.GetConfig)
	guestHandler.Register(router.Group("/api/guest"))

	adminGroup := router.Group("/api/admin", api.RequirePIN(cfg.Admin.PIN))
	adminHandler.Register(adminGroup)

	if cfg.Uploads.Dir != "" {
		router.Static("/media", cfg.Uploads.Dir)
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}
}
