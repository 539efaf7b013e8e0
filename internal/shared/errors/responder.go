package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type of every error body.
const ContentTypeProblemJSON = "application/problem+json"

// ErrorMapper turns an application error into a problem when it recognises it.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder writes problems, consulting its mappers in order for plain errors.
// Unrecognised errors become 500s.
type Responder struct {
	baseURI string
	mappers []ErrorMapper
}

func NewChainedResponder(baseURI string, mappers ...ErrorMapper) *Responder {
	return &Responder{baseURI: baseURI, mappers: mappers}
}

func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.baseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.baseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	r.Respond(c, ErrInternal.WithDetail(err.Error()))
}
