// Package server is the thin HTTP surface over the engine. It owns
// request shaping, validation and metrics; all analysis semantics live
// behind the contract.Analyzer interface.
package server

import (
	"log/slog"

	"social-intel/contract"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin router with all routes registered.
func NewRouter(log *slog.Logger, analyzer contract.Analyzer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	h := NewHandler(log, analyzer)

	api := router.Group("/api")
	api.POST("/analyze", h.Analyze)
	api.POST("/analyze/batch", h.AnalyzeBatch)
	api.GET("/languages", h.Languages)

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
