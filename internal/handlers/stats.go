package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/cardbase/internal/query"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// StatsHandler handles the aggregate statistics endpoint
type StatsHandler struct {
	cards *query.Engine
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(cards *query.Engine) *StatsHandler {
	return &StatsHandler{cards: cards}
}

// Stats returns the total card count and per-type, per-rarity and per-set
// frequency tables.
func (h *StatsHandler) Stats(c *gin.Context) {
	st, err := h.cards.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Root is the liveness/info endpoint
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "cardbase - card catalog query service",
		"version": Version,
	})
}
