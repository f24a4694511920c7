package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/rosecen/qiongyou-travel-guide/internal/models/request_models"
	"github.com/rosecen/qiongyou-travel-guide/internal/models/response_models"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

type GuideServiceInterface interface {
	GenerateGuide(ctx context.Context, req request_models.GenerateGuideRequest) (*response_models.Guide, error)
}

type GuideService struct {
	aiClient utils.GuideAIClientInterface
}

// NewGuideService wires the guide orchestrator. aiClient may be nil when no
// provider credential is configured; every request then uses the fallback
// generator.
func NewGuideService(aiClient utils.GuideAIClientInterface) GuideServiceInterface {
	return &GuideService{
		aiClient: aiClient,
	}
}

// GenerateGuide validates the request, tries the AI provider once, and falls
// back to the deterministic generator on any failure. Only validation errors
// are surfaced; an unusable AI response is never an error for the caller.
func (s *GuideService) GenerateGuide(ctx context.Context, req request_models.GenerateGuideRequest) (*response_models.Guide, error) {
	input, err := validateGuideRequest(req)
	if err != nil {
		return nil, err
	}

	styleDesc := styleDescription(input.Style)

	if guide := s.tryAIGeneration(ctx, input, styleDesc); guide != nil {
		return guide, nil
	}

	return buildFallbackGuide(input.City, input.Budget, input.Days, styleDesc), nil
}

func (s *GuideService) tryAIGeneration(ctx context.Context, input guideInput, styleDesc string) *response_models.Guide {
	if s.aiClient == nil {
		return nil
	}

	prompt := buildGuidePrompt(input.City, input.Budget, input.Days, styleDesc)

	content, err := s.aiClient.GenerateGuide(ctx, prompt)
	if err != nil {
		log.Printf("AI guide generation failed, using local fallback: %v", err)
		return nil
	}

	guide := parseGuideResponse(content)
	if guide == nil {
		log.Printf("AI returned unparseable guide content, using local fallback")
	}
	return guide
}

// parseGuideResponse strips markdown code fences the model sometimes wraps the
// JSON in, then parses the guide. Returns nil on any parse failure.
func parseGuideResponse(content string) *response_models.Guide {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	cleaned = strings.TrimSpace(cleaned)

	var guide response_models.Guide
	if err := json.Unmarshal([]byte(cleaned), &guide); err != nil {
		return nil
	}
	return &guide
}
