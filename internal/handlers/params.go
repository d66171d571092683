package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// pathID reads a positive integer path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Path parameter "+name+" must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// requiredQueryID reads a positive integer query parameter that must be present.
func requiredQueryID(c *gin.Context, name, label string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_"+name, label+" is required")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, label+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
