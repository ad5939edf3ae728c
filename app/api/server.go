// Package api serves the generated feed and the local episode files over
// HTTP so the podcast can be previewed in a client before upload.
package api

import (
	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/feed.xml", handler.GetFeed)
	r.GET("/episodes/:name", handler.GetEpisode)
	r.GET("/health", handler.GetHealth)

	return r
}
