package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns gin.Default with every route registered. Middleware must
// be installed before registration, so callers that need more than logging
// and recovery build the engine and use NewRouterWithGinEngine.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc answers routes without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// ApiHandleFunctions groups the handlers of every surface.
type ApiHandleFunctions struct {
	// Routes for the PageAPI part of the API
	PageAPI PageAPI
	// Routes for the CatalogAPI part of the API
	CatalogAPI CatalogAPI
	// Routes for the CartAPI part of the API
	CartAPI CartAPI
	// Routes for the NavigationAPI part of the API
	NavigationAPI NavigationAPI
	// Routes for the CheckoutAPI part of the API
	CheckoutAPI CheckoutAPI
}

// NewHandlers builds every API group over one storefront.
func NewHandlers(store Storefront) ApiHandleFunctions {
	return ApiHandleFunctions{
		PageAPI:       NewPageAPI(store),
		CatalogAPI:    NewCatalogAPI(store),
		CartAPI:       NewCartAPI(store),
		NavigationAPI: NewNavigationAPI(store),
		CheckoutAPI:   NewCheckoutAPI(store),
	}
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Index", http.MethodGet, "/", handleFunctions.PageAPI.Index},
		{"Navigate", http.MethodPost, "/nav/:section", handleFunctions.PageAPI.Navigate},
		{"AddToCartForm", http.MethodPost, "/cart/items/:productId", handleFunctions.PageAPI.AddToCart},
		{"IncrementLineForm", http.MethodPost, "/cart/items/:productId/increment", handleFunctions.PageAPI.Increment},
		{"DecrementLineForm", http.MethodPost, "/cart/items/:productId/decrement", handleFunctions.PageAPI.Decrement},
		{"RemoveLineForm", http.MethodPost, "/cart/items/:productId/remove", handleFunctions.PageAPI.Remove},
		{"PlaceOrderForm", http.MethodPost, "/checkout", handleFunctions.PageAPI.PlaceOrder},
		{"SelectPaymentMethodForm", http.MethodPost, "/checkout/payment-method", handleFunctions.PageAPI.SelectPaymentMethod},

		{"Healthz", http.MethodGet, "/api/v1/healthz", Healthz},
		{"ListProducts", http.MethodGet, "/api/v1/products", handleFunctions.CatalogAPI.ListProducts},
		{"GetProductById", http.MethodGet, "/api/v1/products/:productId", handleFunctions.CatalogAPI.GetProductById},
		{"GetCart", http.MethodGet, "/api/v1/cart", handleFunctions.CartAPI.GetCart},
		{"AddCartItem", http.MethodPost, "/api/v1/cart/items", handleFunctions.CartAPI.AddItem},
		{"ChangeCartItemQty", http.MethodPatch, "/api/v1/cart/items/:productId", handleFunctions.CartAPI.ChangeQty},
		{"RemoveCartItem", http.MethodDelete, "/api/v1/cart/items/:productId", handleFunctions.CartAPI.RemoveItem},
		{"ClearCart", http.MethodDelete, "/api/v1/cart", handleFunctions.CartAPI.Clear},
		{"GetNavigation", http.MethodGet, "/api/v1/navigation", handleFunctions.NavigationAPI.GetNavigation},
		{"Navigate", http.MethodPut, "/api/v1/navigation", handleFunctions.NavigationAPI.Navigate},
		{"PlaceOrder", http.MethodPost, "/api/v1/checkout", handleFunctions.CheckoutAPI.PlaceOrder},
		{"SelectPaymentMethod", http.MethodPut, "/api/v1/checkout/payment-method", handleFunctions.CheckoutAPI.SelectPaymentMethod},
	}
}
