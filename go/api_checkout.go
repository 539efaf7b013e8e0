package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutmapper "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/http/mapper"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
)

// CheckoutAPI exposes the checkout flow as JSON.
type CheckoutAPI struct {
	store Storefront
}

func NewCheckoutAPI(store Storefront) CheckoutAPI {
	return CheckoutAPI{store: store}
}

// Post /api/v1/checkout
// Place the order. Nothing is charged.
func (api *CheckoutAPI) PlaceOrder(c *gin.Context) {
	var payload checkoutmapper.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	receipt, err := api.store.PlaceOrder(c.Request.Context(), checkoutports.PlaceOrderInput{
		Method:    payload.PaymentMethod,
		Reference: payload.Reference,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutmapper.FromDomainReceipt(receipt))
}

// Put /api/v1/checkout/payment-method
func (api *CheckoutAPI) SelectPaymentMethod(c *gin.Context) {
	var payload checkoutmapper.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	method, err := api.store.SelectPaymentMethod(c.Request.Context(), payload.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutmapper.FromPaymentMethod(method))
}
