package handlers

import (
	"net/http"

	catalogRepo "bookday/database/repository/catalog"
	"bookday/services/upgrade"

	"github.com/gin-gonic/gin"
)

// UpgradeHandler exposes upgrade pricing and the catalog reads that feed it.
type UpgradeHandler struct {
	Service upgrade.UpgradeService
	Catalog catalogRepo.CatalogRepository
}

// NewUpgradeHandler constructs an UpgradeHandler.
func NewUpgradeHandler(service upgrade.UpgradeService, catalog catalogRepo.CatalogRepository) *UpgradeHandler {
	return &UpgradeHandler{Service: service, Catalog: catalog}
}

// QuoteUpgrade prices the upgrade of a paid booking. The target slug is
// optional; without one the legacy default upgrade path applies.
func (h *UpgradeHandler) QuoteUpgrade(c *gin.Context) {
	quote, err := h.Service.ComputeUpgrade(c.Request.Context(), c.Param("bookingID"), c.Query("target"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ListPackages returns the package catalog.
func (h *UpgradeHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.Catalog.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetUpgradeLink resolves an upgrade link by slug.
func (h *UpgradeHandler) GetUpgradeLink(c *gin.Context) {
	link, err := h.Catalog.GetUpgradeLinkBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if link == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "upgrade link not found"})
		return
	}
	c.JSON(http.StatusOK, link)
}
