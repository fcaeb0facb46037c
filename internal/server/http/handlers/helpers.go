package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryID parses the mandatory ?id= parameter. On failure it writes 400
// and reports false.
func queryID(c *gin.Context) (int64, bool) {
	raw := c.Query("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
