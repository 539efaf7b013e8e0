package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/http/mapper"
)

// CatalogAPI exposes the read-only product list.
type CatalogAPI struct {
	store Storefront
}

func NewCatalogAPI(store Storefront) CatalogAPI {
	return CatalogAPI{store: store}
}

// Get /api/v1/products
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.store.Products(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

// Get /api/v1/products/:productId
func (api *CatalogAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.store.Product(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}
