package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitroast/gitroast/internal/models"
	"github.com/gitroast/gitroast/internal/services"
	"github.com/gitroast/gitroast/pkg/logger"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetHistory returns the most recent searches
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	records, err := h.historyService.RecentSearches()
	if err != nil {
		logger.WithError(err).Errorf("failed to load search history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load search history"})
		return
	}

	if records == nil {
		records = []*models.SearchRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"searches": records})
}

// GetFavorites returns the pinned usernames
func (h *HistoryHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.historyService.Favorites()
	if err != nil {
		logger.WithError(err).Errorf("failed to load favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load favorites"})
		return
	}

	if favorites == nil {
		favorites = []*models.Favorite{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite pins a username
func (h *HistoryHandler) AddFavorite(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	if err := h.historyService.AddFavorite(body.Username); err != nil {
		logger.WithError(err).Errorf("failed to add favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"username": strings.TrimSpace(body.Username)})
}

// RemoveFavorite unpins a username
func (h *HistoryHandler) RemoveFavorite(c *gin.Context) {
	username := c.Param("username")

	if err := h.historyService.RemoveFavorite(username); err != nil {
		logger.WithError(err).Errorf("failed to remove favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	c.Status(http.StatusNoContent)
}
