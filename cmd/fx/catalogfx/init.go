package catalogfx

import (
	"go.uber.org/fx"

	"github.com/rosecen/qiongyou-travel-guide/internal/api/controllers"
)

var Module = fx.Provide(
	ProvideCatalogController)

func ProvideCatalogController() *controllers.CatalogController {
	return controllers.NewCatalogController()
}
