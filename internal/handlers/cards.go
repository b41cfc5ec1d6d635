package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/cardbase/internal/query"
	apperrors "github.com/kartikbazzad/cardbase/pkg/errors"
)

// MaxListLimit bounds the limit query parameter on card listings.
const MaxListLimit = 1000

// CardHandler handles card lookup, search and filter endpoints
type CardHandler struct {
	cards *query.Engine
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cards *query.Engine) *CardHandler {
	return &CardHandler{cards: cards}
}

// ListCards returns the collection in stored order with optional pagination.
// Query params: limit (1-1000), offset (>= 0, default 0).
func (h *CardHandler) ListCards(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxListLimit {
			respondError(c, apperrors.BadRequest("limit must be an integer between 1 and 1000"))
			return
		}
		limit = n
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, apperrors.BadRequest("offset must be a non-negative integer"))
			return
		}
		offset = n
	}

	cards, err := h.cards.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCard returns the card whose id matches "/{setId}/{cardId}"
func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.cards.GetByKey(c.Param("setId"), c.Param("cardId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// SearchByName returns cards whose name contains the path value,
// case-insensitively. An empty result is a valid 200 response.
func (h *CardHandler) SearchByName(c *gin.Context) {
	cards, err := h.cards.SearchByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// FilterByType returns cards whose type equals the path value
func (h *CardHandler) FilterByType(c *gin.Context) {
	cards, err := h.cards.FilterByType(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// FilterByRarity returns cards whose rarity equals the path value
func (h *CardHandler) FilterByRarity(c *gin.Context) {
	cards, err := h.cards.FilterByRarity(c.Param("rarity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// FilterBySet returns cards whose set equals the path value
func (h *CardHandler) FilterBySet(c *gin.Context) {
	cards, err := h.cards.FilterBySet(c.Param("set"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// respondError maps engine and application errors onto JSON error responses
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	switch {
	case errors.Is(err, query.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "card dataset not loaded"})
	case errors.Is(err, query.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
