package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramInt64 parses an int64 path parameter
func paramInt64(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// queryInt parses an int query parameter with a default
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
