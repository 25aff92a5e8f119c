package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads the :id path segment. On garbage it writes the 400 and
// tells the caller to stop.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondLookupError separates a missing record from a database failure:
// only gorm's not-found maps to 404, anything else is a server error and
// the raw cause goes back to the caller.
func respondLookupError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error", "error": err.Error()})
}
