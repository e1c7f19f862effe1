package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ValidateArguments(false, "A1"), fiber.StatusBadRequest},
		{domain.SourceNotFound(), fiber.StatusNotFound},
		{domain.EmptyResult(), fiber.StatusNotFound},
		{domain.InsufficientFunds(), fiber.StatusUnprocessableEntity},
		{domain.MissingSetting("TransferFee"), fiber.StatusInternalServerError},
		{domain.StoreFailure(errors.New("x")), fiber.StatusInternalServerError},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), tt.err.Error())
	}
}

func problemFor(t *testing.T, err error) ProblemDetails {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return ProblemDetailsJSON(c, "Failed", err) })
	resp, terr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, terr)
	defer resp.Body.Close() //nolint: errcheck
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, pd.Status, resp.StatusCode)
	return pd
}

func TestProblemDetailsJSON_HidesServerCauses(t *testing.T) {
	pd := problemFor(t, domain.StoreFailure(errors.New("pq: relation \"accounts\" does not exist")))
	assert.Equal(t, domain.MsgStoreFailure, pd.Detail)
	assert.Equal(t, "StoreFailure", pd.Kind)

	pd = problemFor(t, errors.New("nil pointer somewhere"))
	assert.Equal(t, fiber.StatusInternalServerError, pd.Status)
	assert.Equal(t, domain.MsgUnexpected, pd.Detail)
}

type probe struct {
	Name string `json:"name" validate:"max=3"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[probe](c)
		if input == nil {
			return err
		}
		return c.SendString(input.Name)
	})

	send := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := send(`{"name":"abc"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = send(`{"name":"abcd"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, map[string]any{"Name": "max"}, pd.Errors)

	resp = send(`not json`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
