// Package response writes the API envelope shared by every endpoint.
//
// Success: { success: true,  statusCode, data, message }
// Failure: { success: false, statusCode, message, errors }
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aleee071/novashop-app/apperr"
	"github.com/Aleee071/novashop-app/logger"
)

type Body struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Errors     []string    `json:"errors,omitempty"`
}

func OK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Body{
		Success:    true,
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// Error maps an error onto the envelope. Internal errors are logged with their
// full chain but surface only a generic message.
func Error(c *gin.Context, err error) {
	appErr := apperr.From(err)
	status := appErr.HTTPStatus()

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("status", status),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	c.JSON(status, Body{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Errors:     []string{string(appErr.Code)},
	})
}
