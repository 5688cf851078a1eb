package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewErrorResp returns a WordPress REST error body.
func NewErrorResp(status int, code, message string) Resp {
	return Resp{
		Code:    code,
		Message: message,
		Data:    ErrorData{Status: status},
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends a WordPress-style error with the given status, code and message.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, NewErrorResp(status, code, message))
}

// TermExists sends the 400 WordPress returns when a category name is taken.
func TermExists(c *gin.Context, termID int) {
	resp := NewErrorResp(http.StatusBadRequest, CodeTermExists, MessageTermExists)
	resp.Data.TermID = termID
	c.JSON(http.StatusBadRequest, resp)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, NewErrorResp(http.StatusInternalServerError, CodeInternalError, DefaultErrorMessage))
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, NewErrorResp(http.StatusUnauthorized, CodeNotLoggedIn, MessageNotLoggedIn))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, NewErrorResp(http.StatusForbidden, CodeForbidden, MessageForbidden))
}
