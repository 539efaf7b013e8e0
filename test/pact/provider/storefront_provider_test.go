//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/Apurer/go-storefront/test/pact"

	storefrontserver "github.com/Apurer/go-storefront/go"
	"github.com/Apurer/go-storefront/internal/app/storefront"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateProductMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCartHasSneaker: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.addToCart(t, pacttest.SneakerProductID)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp swaps in a fresh storefront session per provider state,
// since a process owns exactly one session.
type contractProviderApp struct {
	mu      sync.RWMutex
	session *storefront.Session
	router  http.Handler
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		router := app.router
		app.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	session, err := storefront.NewInMemorySession(context.Background())
	require.NoError(t, err)
	router := gin.New()
	router.Use(gin.Recovery())
	router = storefrontserver.NewRouterWithGinEngine(router, storefrontserver.NewHandlers(session))

	a.mu.Lock()
	a.session = session
	a.router = router
	a.mu.Unlock()
}

func (a *contractProviderApp) addToCart(t testing.TB, productID int64) {
	t.Helper()
	a.mu.RLock()
	session := a.session
	a.mu.RUnlock()
	_, err := session.AddToCart(context.Background(), productID)
	require.NoError(t, err)
}
