package handlers

import (
	"net/http"

	"pokedex-server/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feed *services.CaptureFeed
}

func NewFeedHandler(feed *services.CaptureFeed) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// GetRecentEvents handles GET /events/recent
func (h *FeedHandler) GetRecentEvents(c *gin.Context) {
	events := h.feed.Recent()
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetFeedStats handles GET /events/stats
func (h *FeedHandler) GetFeedStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.feed.Stats()})
}
