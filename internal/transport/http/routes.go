package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *LabelHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h.router.GET("/", h.formPageHandler)
	h.router.POST("/", h.submitFormHandler)

	h.router.POST("/create-shipping-label", h.createLabelHandler)
}
