package httpt

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/pkg/logger"
	"github.com/Sibghat34/shippo-api/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

//go:generate mockgen -source=label_transport.go -destination=mock/label_mock.go -package=mock_httpt

//go:embed web/*.html
var webFS embed.FS

type LabelCreator interface {
	CreateLabel(ctx context.Context, values *entity.FormValues) (*entity.Label, error)
}

type LabelHandler struct {
	svc            LabelCreator
	log            logger.Logger
	metrics        metric.HTTP
	requestTimeout time.Duration
	router         *gin.Engine
	handler        http.Handler
}

func NewLabelHandler(
	svc LabelCreator,
	cfg *config.HTTP,
	log logger.Logger,
	metrics metric.HTTP,
) *LabelHandler {
	h := &LabelHandler{
		svc:            svc,
		log:            log,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/*.html")))

	h.router = router
	h.setupRoutes()

	h.handler = cors.New(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	return h
}

// Handler returns the engine behind the CORS policy.
func (h *LabelHandler) Handler() http.Handler {
	return h.handler
}
