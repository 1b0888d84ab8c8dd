package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError is a client mistake in the request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrTitleURLRequired = &ValidationError{Message: "Title and URL required"}

// respondError writes {"error": msg}: 400 for validation failures, 500 for
// everything else, with the underlying text passed through.
func respondError(c *gin.Context, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
