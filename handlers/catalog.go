package handlers

import (
	"errors"
	"net/http"

	catalogRepo "huduma/database/repository/catalog"
	providerRepo "huduma/database/repository/provider"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves read-only catalog and directory lookups.
type CatalogHandler struct {
	CatalogRepo  catalogRepo.CatalogRepository
	ProviderRepo providerRepo.ProviderRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, providers providerRepo.ProviderRepository) *CatalogHandler {
	return &CatalogHandler{CatalogRepo: catalog, ProviderRepo: providers}
}

// ListServices returns the full service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.CatalogRepo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns one catalog entry.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.CatalogRepo.GetByID(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "service does not exist")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListProviders returns the provider directory.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	providers, err := h.ProviderRepo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
