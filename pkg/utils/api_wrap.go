package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GuideEnvelope is the response shape of the guide endpoint. The frontend keys
// off Success and renders Error verbatim when it is set.
type GuideEnvelope struct {
	Success   bool   `json:"success"`
	Guide     any    `json:"guide,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func RespondGuide(c *gin.Context, guide any) {
	c.JSON(http.StatusOK, GuideEnvelope{
		Success:   true,
		Guide:     guide,
		Timestamp: NowUnixMillis(),
	})
}

func RespondGuideError(c *gin.Context, code int, message string) {
	c.JSON(code, GuideEnvelope{
		Success:   false,
		Error:     message,
		Timestamp: NowUnixMillis(),
	})
}

// RespondWeatherError writes the bare {"error": ...} body the weather UI expects.
func RespondWeatherError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// HandleGuideError maps service errors onto the guide envelope. Validation
// messages pass through verbatim; anything else becomes a generic 500 so no
// internal detail reaches the caller.
func HandleGuideError(c *gin.Context, err error) {
	var vErr *ValidationError

	switch {
	case errors.As(err, &vErr):
		RespondGuideError(c, http.StatusBadRequest, vErr.Message)
	default:
		log.Printf("guide generation error: %v", err)
		RespondGuideError(c, http.StatusInternalServerError, "服务暂时不可用，请稍后重试")
	}
}

// HandleWeatherError maps service errors onto weather status codes.
func HandleWeatherError(c *gin.Context, err error) {
	var nfErr *CityNotFoundError

	switch {
	case errors.Is(err, ErrEmptyCityName):
		RespondWeatherError(c, http.StatusBadRequest, "城市名称不能为空")
	case errors.Is(err, ErrWeatherNotConfigured):
		RespondWeatherError(c, http.StatusInternalServerError, "天气服务配置错误")
	case errors.As(err, &nfErr):
		RespondWeatherError(c, http.StatusNotFound, fmt.Sprintf("无法获取 %s 的天气信息，请检查城市名称", nfErr.City))
	default:
		log.Printf("weather error: %v", err)
		RespondWeatherError(c, http.StatusInternalServerError, "获取天气信息失败，请稍后重试")
	}
}
