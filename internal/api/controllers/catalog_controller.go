package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rosecen/qiongyou-travel-guide/internal/services"
)

// CatalogController serves the static form data (travel styles, city lists)
// the frontend used to hardcode.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

func (ctl *CatalogController) ListStylesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": services.ListTravelStyles()})
}

func (ctl *CatalogController) ListCitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, services.ListCities())
}
