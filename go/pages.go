package storefrontserver

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartapp "github.com/Apurer/go-storefront/internal/domains/cart/application"
	checkoutapp "github.com/Apurer/go-storefront/internal/domains/checkout/application"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
)

// PageAPI serves the HTML document and its form actions. Every action
// redirects back to the page, which shows the result.
type PageAPI struct {
	store Storefront
}

func NewPageAPI(store Storefront) PageAPI {
	return PageAPI{store: store}
}

// Get /
func (api *PageAPI) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := api.store.WritePage(c.Request.Context(), &buf); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Post /nav/:section
// Unknown sections are ignored.
func (api *PageAPI) Navigate(c *gin.Context) {
	_, err := api.store.Navigate(c.Request.Context(), c.Param("section"))
	if err != nil && !errors.Is(err, navdomain.ErrUnknownSection) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

// Post /cart/items/:productId
func (api *PageAPI) AddToCart(c *gin.Context) {
	id, ok := formProductID(c)
	if !ok {
		return
	}
	if _, err := api.store.AddToCart(c.Request.Context(), id); err != nil && !isLookupMiss(err) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

// Post /cart/items/:productId/increment
func (api *PageAPI) Increment(c *gin.Context) {
	api.changeQty(c, 1)
}

// Post /cart/items/:productId/decrement
func (api *PageAPI) Decrement(c *gin.Context) {
	api.changeQty(c, -1)
}

func (api *PageAPI) changeQty(c *gin.Context, delta int) {
	id, ok := formProductID(c)
	if !ok {
		return
	}
	if err := api.store.ChangeQty(c.Request.Context(), id, delta); err != nil && !isLookupMiss(err) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

// Post /cart/items/:productId/remove
func (api *PageAPI) Remove(c *gin.Context) {
	id, ok := formProductID(c)
	if !ok {
		return
	}
	if err := api.store.RemoveFromCart(c.Request.Context(), id); err != nil && !isLookupMiss(err) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

// Post /checkout
// Validation failures surface as an alert on the next page render.
func (api *PageAPI) PlaceOrder(c *gin.Context) {
	input := checkoutports.PlaceOrderInput{
		Method:    c.PostForm("payment"),
		Reference: c.PostForm("upi_id"),
	}
	if _, err := api.store.PlaceOrder(c.Request.Context(), input); err != nil && !errors.Is(err, checkoutapp.ErrInvalidInput) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

// Post /checkout/payment-method
func (api *PageAPI) SelectPaymentMethod(c *gin.Context) {
	if _, err := api.store.SelectPaymentMethod(c.Request.Context(), c.PostForm("payment")); err != nil && !errors.Is(err, checkoutapp.ErrInvalidInput) {
		respondServiceError(c, err)
		return
	}
	backToPage(c)
}

func backToPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// formProductID treats a malformed id like any other lookup-miss.
func formProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		backToPage(c)
		return 0, false
	}
	return id, true
}

func isLookupMiss(err error) bool {
	return errors.Is(err, cartapp.ErrUnknownProduct) || errors.Is(err, cartapp.ErrInvalidInput)
}
