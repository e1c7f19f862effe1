// Package common holds the response helpers shared by the HTTP routes.
package common

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	// Kind is the ledger error classification, when there is one.
	Kind   string `json:"kind,omitempty"`
	Errors any    `json:"errors,omitempty"`
}

var validate = validator.New()

// SuccessResponseJSON writes a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorToStatusCode maps ledger error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return fiber.StatusBadRequest
	case domain.KindAccountNotFound, domain.KindEmptyResult:
		return fiber.StatusNotFound
	case domain.KindInsufficientFunds:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemDetailsJSON writes err as application/problem+json. The status is derived
// from err unless one is given. Server-side failures never expose their cause: the
// detail is the fixed message of the classified error.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := ErrorToStatusCode(err)
	if len(status) > 0 {
		code = status[0]
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   code,
		Instance: c.OriginalURL(),
	}

	var de *domain.Error
	var fe *fiber.Error
	switch {
	case errors.As(err, &de):
		pd.Kind = de.Kind.String()
		pd.Detail = de.Message
	case errors.As(err, &fe):
		pd.Detail = fe.Message
	case err != nil && code < fiber.StatusInternalServerError:
		pd.Detail = err.Error()
	default:
		pd.Detail = domain.MsgUnexpected
	}

	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(code).JSON(pd)
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure the 400 response is already written and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return nil, c.Status(fiber.StatusBadRequest).JSON(ProblemDetails{
				Type:     "about:blank",
				Title:    "Validation failed",
				Status:   fiber.StatusBadRequest,
				Instance: c.OriginalURL(),
				Errors:   fields,
			})
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
