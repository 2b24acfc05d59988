package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mycolab-catalog/dto"
	"github.com/mycolab-catalog/handlers"
	"github.com/mycolab-catalog/models"
	"github.com/mycolab-catalog/repositories"
)

// SetupRoutes mounts the seven catalog resource groups under /api.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	api := router.Group("/api")

	handlers.NewResource[models.Strain, dto.StrainCreateRequest, dto.StrainUpdateRequest](
		repositories.NewCatalogRepository[models.Strain](db), "Strain", "strains",
	).Register(api.Group("/strains"))

	handlers.NewResource[models.CultureType, dto.CultureTypeCreateRequest, dto.CultureTypeUpdateRequest](
		repositories.NewCatalogRepository[models.CultureType](db), "Culture type", "culture types",
	).Register(api.Group("/culture-types"))

	handlers.NewResource[models.GrowParameter, dto.GrowParameterCreateRequest, dto.GrowParameterUpdateRequest](
		repositories.NewCatalogRepository[models.GrowParameter](db), "Grow parameter", "grow parameters",
	).Register(api.Group("/grow-parameters"))

	handlers.NewResource[models.Substrate, dto.SubstrateCreateRequest, dto.SubstrateUpdateRequest](
		repositories.NewCatalogRepository[models.Substrate](db), "Substrate", "substrates",
	).Register(api.Group("/substrates"))

	handlers.NewResource[models.ConsumableItem, dto.ConsumableItemCreateRequest, dto.ConsumableItemUpdateRequest](
		repositories.NewCatalogRepository[models.ConsumableItem](db), "Consumable item", "consumable items",
	).Register(api.Group("/consumable-items"))

	handlers.NewResource[models.DurableItem, dto.DurableItemCreateRequest, dto.DurableItemUpdateRequest](
		repositories.NewCatalogRepository[models.DurableItem](db), "Durable item", "durable items",
	).Register(api.Group("/durable-items"))

	handlers.NewResource[models.Protocol, dto.ProtocolCreateRequest, dto.ProtocolUpdateRequest](
		repositories.NewCatalogRepository[models.Protocol](db), "Protocol", "protocols",
	).Register(api.Group("/protocols"))
}
