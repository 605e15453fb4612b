package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitroast/gitroast/internal/models"
	"github.com/gitroast/gitroast/internal/services"
	"github.com/gitroast/gitroast/pkg/logger"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	historyService *services.HistoryService
	exportService  *services.ExportService
}

func NewProfileHandler(profileService *services.ProfileService, historyService *services.HistoryService, exportService *services.ExportService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		historyService: historyService,
		exportService:  exportService,
	}
}

// GetProfile fetches and roasts a single profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileService.FetchProfile(c.Request.Context(), username)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	if err := h.historyService.RecordSearch(username); err != nil {
		logger.WithError(err).WithField("username", username).Warnf("failed to record search")
	}

	c.JSON(http.StatusOK, profile)
}

// CompareProfiles fetches two profiles and returns them side by side
func (h *ProfileHandler) CompareProfiles(c *gin.Context) {
	users := strings.Split(c.Query("users"), ",")
	if len(users) != 2 || strings.TrimSpace(users[0]) == "" || strings.TrimSpace(users[1]) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "exactly two usernames are required, e.g. ?users=alice,bob",
			"code":  "invalid_comparison",
		})
		return
	}

	profiles := make([]*models.GitHubProfile, 2)
	for i, username := range users {
		profile, err := h.profileService.FetchProfile(c.Request.Context(), strings.TrimSpace(username))
		if err != nil {
			respondFetchError(c, err)
			return
		}
		profiles[i] = profile
	}

	c.JSON(http.StatusOK, models.NewProfileComparison(profiles[0], profiles[1]))
}

// ExportProfile streams the roast report as an .xlsx attachment
func (h *ProfileHandler) ExportProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileService.FetchProfile(c.Request.Context(), username)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(profile)
	if err != nil {
		logger.WithError(err).WithField("username", username).Errorf("failed to build export workbook")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to build export",
			"code":  "export_failed",
		})
		return
	}

	filename := fmt.Sprintf("%s-roast.xlsx", profile.Username)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook.Bytes())
}

// respondFetchError maps pipeline error kinds onto HTTP statuses. The
// outward message for upstream problems stays deliberately generic; the
// code field carries the kind.
func respondFetchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyUsername):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "username is required",
			"code":  "invalid_username",
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Failed to fetch GitHub profile",
			"code":  "user_not_found",
		})
	case services.IsRateLimitExceeded(err):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "rate limit exceeded, try again later",
			"code":  "rate_limit_exceeded",
		})
	default:
		logger.WithError(err).Errorf("profile fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch GitHub profile",
			"code":  "upstream_failure",
		})
	}
}
