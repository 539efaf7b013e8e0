package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	navmapper "github.com/Apurer/go-storefront/internal/domains/navigation/adapters/http/mapper"
)

type NavigationAPI struct {
	store Storefront
}

func NewNavigationAPI(store Storefront) NavigationAPI {
	return NavigationAPI{store: store}
}

// Get /api/v1/navigation
func (api *NavigationAPI) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, navmapper.FromState(api.store.Navigation(c.Request.Context())))
}

// Put /api/v1/navigation
func (api *NavigationAPI) Navigate(c *gin.Context) {
	var payload navmapper.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	state, err := api.store.Navigate(c.Request.Context(), payload.Section)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, navmapper.FromState(state))
}
