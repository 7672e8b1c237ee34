package response

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoInput struct {
	Body struct {
		Count int `json:"count,omitempty"`
	}
}

type echoOutput struct {
	Body struct {
		Count int `json:"count"`
	}
}

type failBody struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func echo(_ context.Context, in *echoInput) (*echoOutput, error) {
	out := &echoOutput{}
	out.Body.Count = in.Body.Count
	return out, nil
}

func TestInstallInvalidBody(t *testing.T) {
	InstallInvalidBody()

	_, api := humatest.New(t)
	huma.Register(api, WithInvalidBody(huma.Operation{
		OperationID: "echo-custom",
		Method:      http.MethodPost,
		Path:        "/custom",
	}, func(message string) any {
		return failBody{Message: message}
	}), echo)
	huma.Register(api, huma.Operation{
		OperationID: "echo-default",
		Method:      http.MethodPost,
		Path:        "/default",
	}, echo)

	t.Run("wrong type", func(t *testing.T) {
		resp := api.Post("/custom", strings.NewReader(`{"count": "three"}`))
		require.Equal(t, http.StatusBadRequest, resp.Code)

		var body failBody
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, failBody{Message: InvalidJSONMessage}, body)
	})

	t.Run("malformed", func(t *testing.T) {
		resp := api.Post("/custom", strings.NewReader(`{"count":`))
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), InvalidJSONMessage)
	})

	t.Run("valid body untouched", func(t *testing.T) {
		resp := api.Post("/custom", map[string]any{"count": 3})
		require.Equal(t, http.StatusOK, resp.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.EqualValues(t, 3, body["count"])
	})

	t.Run("other operations keep problem details", func(t *testing.T) {
		resp := api.Post("/default", strings.NewReader(`{"count": "three"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/problem+json")
	})
}

func TestBodyError(t *testing.T) {
	err := &BodyError{Status: http.StatusBadRequest, Body: failBody{Message: "x"}}

	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Equal(t, InvalidJSONMessage, err.Error())

	raw, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"ok": false, "message": "x"}`, string(raw))
}
