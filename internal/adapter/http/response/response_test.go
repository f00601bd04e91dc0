package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	details := map[string]string{
		"origin": "must be a valid IATA code",
	}
	require.NoError(t, ValidationError(c, details))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, "must be a valid IATA code", result.Details["origin"])
}

func TestNotFound(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, NotFound(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)
}

func TestServiceUnavailable(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, ServiceUnavailable(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeServiceUnavailable, result.Code)
	assert.Equal(t, MsgServiceUnavailable, result.Message)
}

func TestGatewayTimeout(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, GatewayTimeout(c))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, CodeTimeout, decodeError(t, rec).Code)
}

func TestInternalServerError(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, InternalServerError(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, CodeInternalError, decodeError(t, rec).Code)
}
