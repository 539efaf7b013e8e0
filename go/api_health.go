package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get /api/v1/healthz
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
