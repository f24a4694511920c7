package services

import (
	"strings"

	"github.com/rosecen/qiongyou-travel-guide/internal/models/request_models"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

// guideInput is a fully parsed, validated guide request.
type guideInput struct {
	City   string
	Budget int
	Days   int
	Style  string
}

// validateGuideRequest applies the request rules in order; the first failed
// rule wins and its message is surfaced verbatim to the user.
func validateGuideRequest(req request_models.GenerateGuideRequest) (guideInput, error) {
	city := strings.TrimSpace(req.City)
	style := strings.TrimSpace(req.Style)

	if city == "" || style == "" || !req.Budget.IsSet() || !req.Days.IsSet() {
		return guideInput{}, &utils.ValidationError{Message: "请填写完整的旅行信息"}
	}

	days, err := req.Days.Int()
	if err != nil || days < 1 || days > 30 {
		return guideInput{}, &utils.ValidationError{Message: "旅游天数请设置在1-30天之间"}
	}

	budget, err := req.Budget.Int()
	if err != nil || budget < 100 {
		return guideInput{}, &utils.ValidationError{Message: "预算至少需要100元"}
	}

	return guideInput{
		City:   city,
		Budget: budget,
		Days:   days,
		Style:  style,
	}, nil
}
