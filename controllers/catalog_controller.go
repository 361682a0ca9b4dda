package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuroad-server/pkg/catalog"
)

// CatalogController serves the static strategy, platform and tip catalogs.
// The payloads never change between calls.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// @Summary List psychological strategies
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Strategy
// @Router /api/strategies [get]
func (c *CatalogController) GetStrategies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Strategies())
}

// @Summary List platform sizes
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Platform
// @Router /api/platforms [get]
func (c *CatalogController) GetPlatforms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Platforms())
}

// @Summary List marketing tips
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Tip
// @Router /api/marketing-tips [get]
func (c *CatalogController) GetMarketingTips(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.MarketingTips())
}
