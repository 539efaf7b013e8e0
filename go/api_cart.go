package storefrontserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/Apurer/go-storefront/internal/domains/cart/adapters/http/mapper"
)

// CartAPI exposes the cart store as JSON. Every mutation answers with the
// resulting cart.
type CartAPI struct {
	store Storefront
}

func NewCartAPI(store Storefront) CartAPI {
	return CartAPI{store: store}
}

// Get /api/v1/cart
func (api *CartAPI) GetCart(c *gin.Context) {
	api.respondCart(c, http.StatusOK)
}

// Post /api/v1/cart/items
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload cartmapper.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := api.store.AddToCart(c.Request.Context(), *payload.ProductID); err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, http.StatusOK)
}

// Patch /api/v1/cart/items/:productId
// Changing an absent line is a no-op.
func (api *CartAPI) ChangeQty(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload cartmapper.ChangeQtyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.store.ChangeQty(c.Request.Context(), id, *payload.Delta); err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, http.StatusOK)
}

// Delete /api/v1/cart/items/:productId
func (api *CartAPI) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.store.RemoveFromCart(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, http.StatusOK)
}

// Delete /api/v1/cart
func (api *CartAPI) Clear(c *gin.Context) {
	if err := api.store.ClearCart(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, http.StatusOK)
}

func (api *CartAPI) respondCart(c *gin.Context, status int) {
	body, err := api.snapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(status, body)
}

func (api *CartAPI) snapshot(ctx context.Context) (cartmapper.Cart, error) {
	cart, err := api.store.Cart(ctx)
	if err != nil {
		return cartmapper.Cart{}, err
	}
	if cart == nil {
		return cartmapper.Cart{}, errors.New("cart unavailable")
	}
	return cartmapper.FromDomainCart(cart), nil
}
