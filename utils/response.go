package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/dgraph"
	"utsav/errs"
)

// Error maps the core error kinds onto HTTP statuses. Anything
// unrecognized becomes a 500 without leaking its detail.
func Error(c *gin.Context, err error) {
	var (
		validation *errs.ValidationError
		notFound   *errs.NotFoundError
		conflict   *errs.ConflictError
		upstream   *dgraph.UpstreamError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"message": conflict.Error()})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{
			"message": "directory service error",
			"errors":  upstream.Messages,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
	}
}

// BadRequest reports a malformed or incomplete request body.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
