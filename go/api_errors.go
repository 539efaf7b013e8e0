package storefrontserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartapp "github.com/Apurer/go-storefront/internal/domains/cart/application"
	catalogapp "github.com/Apurer/go-storefront/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
	checkoutapp "github.com/Apurer/go-storefront/internal/domains/checkout/application"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
	apierrors "github.com/Apurer/go-storefront/internal/shared/errors"
)

// responder maps storefront errors to RFC 7807 problems.
var responder = apierrors.NewChainedResponder("",
	mapLookupMiss,
	mapCheckoutValidation,
	mapInvalidInput,
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError is used for transport-level failures such as malformed bodies.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondServiceError maps application errors through the responder chain.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func mapLookupMiss(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, cartapp.ErrUnknownProduct), errors.Is(err, catalogports.ErrNotFound):
		return apierrors.NewNotFoundProblem("product", err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

func mapCheckoutValidation(err error) (apierrors.ProblemDetail, bool) {
	if !errors.Is(err, checkoutapp.ErrInvalidInput) {
		return apierrors.ProblemDetail{}, false
	}
	field := "paymentMethod"
	if errors.Is(err, checkoutdomain.ErrReferenceRequired) {
		field = "reference"
	}
	problem := apierrors.NewValidationProblem(map[string]string{field: checkoutdomain.ShopperMessage(err)})
	return problem.WithDetail(err.Error()), true
}

func mapInvalidInput(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, navdomain.ErrUnknownSection):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
