package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/lunchorder/internal/adapter/config"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	operatorHandler *OperatorHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	if len(conf.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: conf.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}))
	}

	h := NewHandler(logger)

	api := router.Group("/api")
	{
		api.GET("/menu", orderHandler.Menu)
		api.GET("/state", orderHandler.State)

		order := api.Group("/order")
		{
			order.POST("/bases/:id", orderHandler.AdjustBase)
			order.POST("/extras/:id", orderHandler.ToggleExtra)
			order.DELETE("", orderHandler.Reset)
			order.POST("/submit", orderHandler.Submit)
		}

		operator := api.Group("/operator")
		{
			operator.POST("/login", operatorHandler.Login)

			phone := operator.Group("/phone")
			{
				phone.Use(authCheck(h, tokenService))
				phone.GET("", operatorHandler.Phone)
				phone.PUT("", operatorHandler.SavePhone)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server and shuts it down when ctx is done
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
