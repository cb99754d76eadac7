package httpt

import (
	"context"
	"net/http"

	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/form"
	"github.com/Sibghat34/shippo-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _indexTemplate = "index.html"

func (h *LabelHandler) createLabelHandler(c *gin.Context) {
	const op = "transport.createLabelHandler"

	var values entity.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		h.handleInvalidBody(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	label, err := h.svc.CreateLabel(ctx, &values)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	h.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "shipping label created",
		logger.String("op", op),
		logger.String("label_url", label.LabelURL),
	)

	c.JSON(http.StatusOK, LabelResponse{LabelURL: label.LabelURL})
}

func (h *LabelHandler) formPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, _indexTemplate, newPageView(form.NewSession()))
}

func (h *LabelHandler) submitFormHandler(c *gin.Context) {
	const op = "transport.submitFormHandler"

	session := form.NewSession()
	if err := c.ShouldBind(&session.Values); err != nil {
		h.handleInvalidBody(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	if err := session.Submit(ctx, localSubmitter{svc: h.svc}); err != nil {
		h.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "form submission failed",
			logger.String("op", op),
			logger.Any("error", err),
		)
	}

	c.HTML(http.StatusOK, _indexTemplate, newPageView(session))
}

// localSubmitter lets the rendered form reuse the session flow without a
// network round trip.
type localSubmitter struct {
	svc LabelCreator
}

func (s localSubmitter) CreateLabel(ctx context.Context, values form.Values) (string, error) {
	label, err := s.svc.CreateLabel(ctx, &values)
	if err != nil {
		return "", err
	}
	return label.LabelURL, nil
}

func newPageView(s *form.Session) pageView {
	view := pageView{
		Fields:   make([]fieldView, 0, len(form.Fields)),
		LabelURL: s.LabelURL,
	}

	for _, f := range form.Fields {
		view.Fields = append(view.Fields, fieldView{
			Name:        string(f),
			Label:       f.Label(),
			Placeholder: f.Placeholder(),
			Value:       s.Value(f),
			Error:       s.Error(f),
			Numeric:     isNumericField(f),
		})
	}

	if s.Notification != nil {
		view.Notification = &notificationView{
			Title:       s.Notification.Title,
			Description: s.Notification.Description,
			Failed:      s.LabelURL == "",
		}
	}

	return view
}

func isNumericField(f form.Field) bool {
	switch f {
	case form.PackageWeight, form.Length, form.Width, form.Height:
		return true
	default:
		return false
	}
}
