package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	pkgErrors "task-api/pkg/errors"
)

// canonicalUUIDLen is the length of the 8-4-4-4-12 text form.
const canonicalUUIDLen = 36

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processListReq binds the page/limit query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidPaging
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
// An empty body is the same as {}.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq

	id, err := parseID(c)
	if err != nil {
		return req, err
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, bindError(err)
	}
	req.ID = id
	return req, req.validate()
}

// parseID reads the :id path param and accepts only the canonical UUID form.
func parseID(c *gin.Context) (string, error) {
	raw := c.Param("id")
	if len(raw) != canonicalUUIDLen {
		return "", errInvalidID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errInvalidID
	}
	return id.String(), nil
}

// bindError turns binding failures into a 400 with a readable message.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errInvalidBody
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return pkgErrors.NewBadRequest(strings.Join(msgs, ", "))
}
