// Package response defines the JSON envelopes written by handlers.
package response

import "github.com/gin-gonic/gin"

// ErrorDetail is the machine readable part of an error response
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is written for every failed request
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// MessageResponse is the {success, message} body used by mutating endpoints
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendError writes an error envelope
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendMessage writes a {success, message} body
func SendMessage(c *gin.Context, statusCode int, success bool, message string) {
	c.JSON(statusCode, MessageResponse{
		Success: success,
		Message: message,
	})
}
