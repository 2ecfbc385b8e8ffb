package routes

import (
	"antenna_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts     = "/products"
	PathTaxonomy     = "/taxonomy"
	PathMachineTypes = "/machine-types"
	PathReference    = "/reference"
)

func addProductRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, referenceHandler *handlers.ReferenceHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.GET("/:id/pdf", productHandler.ProductPDF)
	}
	rg.GET(PathTaxonomy, productHandler.Taxonomy)

	machineTypes := rg.Group(PathMachineTypes)
	{
		machineTypes.GET("", referenceHandler.ListMachineTypes)
		machineTypes.POST("", referenceHandler.AddMachineType)
	}
	rg.GET(PathReference, referenceHandler.Lists)
}
