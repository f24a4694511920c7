package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rosecen/qiongyou-travel-guide/internal/models/request_models"
	"github.com/rosecen/qiongyou-travel-guide/internal/services"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{
		guideService: guideService,
	}
}

func (g *GuideController) GenerateGuideHandler(c *gin.Context) {
	var req request_models.GenerateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondGuideError(c, http.StatusBadRequest, "请填写完整的旅行信息")
		return
	}

	guide, err := g.guideService.GenerateGuide(c.Request.Context(), req)
	if err != nil {
		utils.HandleGuideError(c, err)
		return
	}

	utils.RespondGuide(c, guide)
}
