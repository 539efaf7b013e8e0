package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSoldOut = errors.New("sold out")

func respond(t *testing.T, r *Responder, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)

	r.RespondError(c, err)

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestResponder_MapperWins(t *testing.T) {
	r := NewChainedResponder("", func(err error) (ProblemDetail, bool) {
		if errors.Is(err, errSoldOut) {
			return NewNotFoundProblem("product", err.Error()), true
		}
		return ProblemDetail{}, false
	})

	rec, problem := respond(t, r, fmt.Errorf("add: %w", errSoldOut))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, TypeNotFound, problem.Type)
	assert.Equal(t, "/api/v1/cart", problem.Instance)
	assert.Equal(t, "product", problem.Extensions["resourceType"])
}

func TestResponder_UnmappedErrorIsInternal(t *testing.T) {
	rec, problem := respond(t, NewChainedResponder(""), errSoldOut)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "sold out", problem.Detail)
}

func TestResponder_BaseURIPrefixesType(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", ErrValidation)
	_, problem := respond(t, NewChainedResponder("https://storefront.example"), wrapped)

	assert.Equal(t, "https://storefront.example"+TypeValidation, problem.Type)
}

func TestWithExtension_DoesNotShareMaps(t *testing.T) {
	base := NewValidationProblem(map[string]string{"reference": "required"})
	derived := base.WithExtension("hint", "x")

	assert.NotContains(t, base.Extensions, "hint")
	assert.Contains(t, derived.Extensions, "fields")
}
