package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleee071/novashop-app/apperr"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Body {
	t.Helper()
	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOKEnvelope(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OK(c, http.StatusCreated, gin.H{"id": "abc"}, "created")
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, "created", body.Message)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Errors)
}

func TestErrorEnvelopeCarriesCode(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, apperr.InsufficientStock("not enough stock"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Equal(t, "not enough stock", body.Message)
	assert.Equal(t, []string{string(apperr.CodeInsufficientStock)}, body.Errors)
}

func TestErrorMasksInternalDetails(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, errors.New("pq: password authentication failed"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "password")
}
