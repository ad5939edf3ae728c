package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	feedPath    string
	episodesDir string
}

func NewHandler(feedPath, episodesDir string) *Handler {
	return &Handler{feedPath: feedPath, episodesDir: episodesDir}
}

func (h *Handler) GetFeed(c *gin.Context) {
	data, err := os.ReadFile(h.feedPath)
	if err != nil {
		slog.Error("Feed file not readable", "path", h.feedPath, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", data)
}

func (h *Handler) GetEpisode(c *gin.Context) {
	// Base strips any path traversal out of the request
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(h.episodesDir, name)

	if _, err := os.Stat(path); err != nil {
		slog.Error("Episode file not found", "path", path)
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
