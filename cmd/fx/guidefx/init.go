package guidefx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/rosecen/qiongyou-travel-guide/internal/api/controllers"
	"github.com/rosecen/qiongyou-travel-guide/internal/services"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

var Module = fx.Provide(
	ProvideGuideAIClient,
	ProvideGuideService,
	ProvideGuideController)

// ProvideGuideAIClient builds the OpenRouter client, or nil when no credential
// is configured so every guide comes from the local fallback generator.
func ProvideGuideAIClient() utils.GuideAIClientInterface {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		log.Println("OPENROUTER_API_KEY not set, guides will use the local fallback generator")
		return nil
	}

	model := os.Getenv("OPENROUTER_MODEL")
	log.Printf("Initializing OpenRouter guide client (model: %s)", modelLabel(model))
	return utils.NewOpenRouterClient(apiKey, model)
}

func ProvideGuideService(aiClient utils.GuideAIClientInterface) services.GuideServiceInterface {
	return services.NewGuideService(aiClient)
}

func ProvideGuideController(guideService services.GuideServiceInterface) *controllers.GuideController {
	return controllers.NewGuideController(guideService)
}

func modelLabel(model string) string {
	if model == "" {
		return "default"
	}
	return model
}
