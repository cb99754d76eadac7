package httpt

import (
	"errors"
	"net/http"

	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/form"
	"github.com/Sibghat34/shippo-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _invalidDataMessage = "Invalid shipment data"

func (h *LabelHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	var fieldErrs form.FieldErrors
	if errors.As(err, &fieldErrs) {
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid shipment data",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("client_ip", c.ClientIP()),
		)

		fields := make(map[string]string, len(fieldErrs))
		for f, msg := range fieldErrs {
			fields[string(f)] = msg
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: _invalidDataMessage, Fields: fields})
		return
	}

	var shipmentErr *entity.ShipmentError
	if !errors.As(err, &shipmentErr) {
		shipmentErr = entity.NewShipmentError(err)
	}

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("path", c.Request.URL.Path),
		logger.String("client_ip", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: shipmentErr.Message})
}

func (h *LabelHandler) handleInvalidBody(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid request body",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
