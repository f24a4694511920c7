package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rosecen/qiongyou-travel-guide/internal/services"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

func (w *WeatherController) GetForecastHandler(c *gin.Context) {
	forecast, err := w.weatherService.GetForecast(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleWeatherError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
