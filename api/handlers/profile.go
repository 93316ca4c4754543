package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lolinsights/api/dto"
	"lolinsights/api/filters"
	profileservice "lolinsights/api/services/profile"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/messages"

	"github.com/gin-gonic/gin"
)

// ProfileResolver is the service surface the handler needs.
type ProfileResolver interface {
	GetProfile(ctx context.Context, gameName string, tagLine string) (*dto.ProfileBundle, error)
	GetFilteredStats(ctx context.Context, gameName string, tagLine string, queueBucket string, championSubstring string) (*dto.FilteredStats, error)
}

// ProfileHandler is the handler for the profile endpoints.
type ProfileHandler struct {
	profileService ProfileResolver
}

// Dependencies of the profile handler.
type ProfileHandlerDependencies struct {
	ProfileService ProfileResolver
}

// NewProfileHandler creates a new instance of the profile handler.
func NewProfileHandler(deps *ProfileHandlerDependencies) *ProfileHandler {
	return &ProfileHandler{
		profileService: deps.ProfileService,
	}
}

// GetProfile handles the full profile resolution for a Riot ID.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	gameName := c.Params.ByName("gameName")
	tagLine := c.Params.ByName("tagLine")
	if gameName == "" || tagLine == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both the game name and the tag line must be provided"})
		return
	}

	bundle, err := h.profileService.GetProfile(c.Request.Context(), gameName, tagLine)
	if err != nil {
		writeUpstreamError(c, err, gameName, tagLine)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// GetFilteredStats recomputes the profile statistics under the queue
// and champion query filters.
func (h *ProfileHandler) GetFilteredStats(c *gin.Context) {
	gameName := c.Params.ByName("gameName")
	tagLine := c.Params.ByName("tagLine")
	if gameName == "" || tagLine == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both the game name and the tag line must be provided"})
		return
	}

	var qp filters.MatchFilterParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.profileService.GetFilteredStats(c.Request.Context(), gameName, tagLine, qp.Queue, qp.Champion)
	if err != nil {
		writeUpstreamError(c, err, gameName, tagLine)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Map the upstream error taxonomy into HTTP statuses.
func writeUpstreamError(c *gin.Context, err error, gameName string, tagLine string) {
	if requests.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf(messages.PlayerNotFoundMsg, gameName, tagLine)})
		return
	}

	if errors.Is(err, profileservice.ErrRefreshInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	var rateLimitErr *requests.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if rateLimitErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitErr.RetryAfter.Seconds())))
		}
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "upstream rate limit exceeded, try again shortly"})
		return
	}

	if requests.IsAuthError(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream rejected the API credentials"})
		return
	}

	var integrityErr *requests.DataIntegrityError
	if errors.As(err, &integrityErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": integrityErr.Error()})
		return
	}

	var apiErr *requests.ApiError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the upstream API request failed"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
