package utility

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestParseIntParam(t *testing.T) {
	assert.Equal(t, 42, ParseIntParam("42", 10))
	assert.Equal(t, 10, ParseIntParam("", 10))
	assert.Equal(t, 10, ParseIntParam("abc", 10))
	assert.Equal(t, 10, ParseIntParam("-5", 10))
	assert.Equal(t, 10, ParseIntParam("0", 10))
}

func TestParseFloatParam(t *testing.T) {
	assert.Equal(t, 1.5, ParseFloatParam("1.5", 2.0))
	assert.Equal(t, 2.0, ParseFloatParam("", 2.0))
	assert.Equal(t, 2.0, ParseFloatParam("abc", 2.0))
	assert.Equal(t, -3.0, ParseFloatParam("-3", 2.0))
}

func testContext(headers map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetRealIP_ForwardedFor(t *testing.T) {
	c := testContext(map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"})
	assert.Equal(t, "203.0.113.9", GetRealIP(c))
}

func TestGetRealIP_RealIPHeader(t *testing.T) {
	c := testContext(map[string]string{"X-Real-IP": "203.0.113.7"})
	assert.Equal(t, "203.0.113.7", GetRealIP(c))
}

func TestGetRealIP_FallsBackToRemoteAddr(t *testing.T) {
	c := testContext(nil)
	assert.NotEmpty(t, GetRealIP(c))
}
