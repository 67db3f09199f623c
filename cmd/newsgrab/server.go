package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsgrab/newsgrab"
)

// Run executes the serve command. The server runs until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	router := newRouter(deps)

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("starting server", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the gin engine with the API routes.
func newRouter(deps *Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/scrape", func(c *gin.Context) {
		articles, err := deps.Scraper.ScrapeList(c.Request.Context(), c.Query("url"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"articles": articles})
	})

	router.GET("/api/article", func(c *gin.Context) {
		markdown := c.Query("markdown") == "true" || c.Query("markdown") == "1"
		article, err := deps.Articles.Extract(c.Request.Context(), c.Query("url"), markdown)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	})

	return router
}

// respondError translates a domain error into an HTTP response.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch newsgrab.ErrorCode(err) {
	case newsgrab.EINVALID:
		status = http.StatusBadRequest
	case newsgrab.EBLOCKED:
		status = http.StatusForbidden
	case newsgrab.ENOTFOUND:
		status = http.StatusNotFound
	case newsgrab.EUPSTREAM:
		// A 4xx from the upstream site is echoed; everything else
		// surfaces as a bad gateway.
		status = http.StatusBadGateway
		if upstream := newsgrab.ErrorStatus(err); upstream >= 400 && upstream < 500 {
			status = upstream
		}
	case newsgrab.EUNAVAILABLE, newsgrab.EINTERNAL:
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": newsgrab.ErrorMessage(err)})
}
