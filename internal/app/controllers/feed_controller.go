package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// FeedController serves the merged read-only views
type FeedController struct {
	feedService services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService) *FeedController {
	return &FeedController{
		feedService: feedService,
	}
}

// GetLatestFeed returns announcements and materials as one list
// @Summary Latest feed
// @Tags feed
// @Produce json
// @Success 200 {array} dto.FeedItem
// @Router /feed/latest [get]
func (c *FeedController) GetLatestFeed(ctx *gin.Context) {
	feed, err := c.feedService.LatestFeed(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, feed)
}

// GetUpcomingDeadlines returns assignments and reminders as one list
// @Summary Upcoming deadlines feed
// @Tags feed
// @Produce json
// @Success 200 {array} dto.DeadlineItem
// @Router /feed/upcoming-deadlines [get]
func (c *FeedController) GetUpcomingDeadlines(ctx *gin.Context) {
	deadlines, err := c.feedService.UpcomingDeadlines(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deadlines)
}
