package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/pkg/apperror"
)

// ErrInvalidID rejects path parameters that are not positive integers.
var ErrInvalidID = apperror.Invalid("id must be a positive integer")

// ID parses the :id path parameter as an integer record identifier.
func ID(c *gin.Context) (int, error) {
	return IDParam(c, "id")
}

// IDParam parses the named path parameter as an integer record identifier.
func IDParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}
