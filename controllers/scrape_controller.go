package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuroad-server/config"
	"neuroad-server/models"
	"neuroad-server/pkg/cache"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/scraper"
)

type ScrapeController struct {
	scraper *scraper.Scraper
}

func NewScrapeController() *ScrapeController {
	return &ScrapeController{
		scraper: scraper.New(config.AppConfig),
	}
}

// @Summary Scrape a website for branding cues
// @Description Fetch a page and extract brand name, colors, services and voice
// @Tags scrape
// @Accept json
// @Produce json
// @Param request body models.ScrapeRequest true "Target URL"
// @Success 200 {object} models.WebsiteData
// @Failure 400 {object} map[string]interface{}
// @Router /api/scrape [post]
func (c *ScrapeController) Scrape(ctx *gin.Context) {
	var req models.ScrapeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cacheKey := cache.ScrapeCacheKey(scraper.NormalizeURL(req.URL))
	if cache.Cache != nil {
		var cached models.WebsiteData
		if err := cache.Cache.GetJSON(cacheKey, &cached); err == nil {
			ctx.JSON(http.StatusOK, cached)
			return
		}
	}

	data, err := c.scraper.Scrape(ctx.Request.Context(), req.URL)
	if err != nil {
		logger.Warnf("Scrape failed for %s: %v", req.URL, err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if cache.Cache != nil {
		if err := cache.Cache.Set(cacheKey, data, cache.ScrapeCacheTTL); err != nil {
			logger.Warnf("Failed to cache scrape result: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, data)
}
