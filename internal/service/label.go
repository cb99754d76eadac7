package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/entity"
	"github.com/Sibghat34/shippo-api/internal/form"
	"github.com/Sibghat34/shippo-api/pkg/logger"
	"github.com/Sibghat34/shippo-api/pkg/metric"
)

const (
	_slowOperationThreshold = 5 * time.Second

	StageValidate = "validate"
	StageQuote    = "quote"
	StagePurchase = "purchase"
)

//go:generate mockgen -source=label.go -destination=mock/provider_mock.go -package=mock_service

type (
	ShippingProvider interface {
		CreateShipment(ctx context.Context, params *entity.ShipmentParams) (*entity.Shipment, error)
		CreateTransaction(ctx context.Context, params *entity.TransactionParams) (*entity.Transaction, error)
	}

	// LabelService turns a submitted form into a purchased shipping label.
	// It keeps no per-request state.
	LabelService struct {
		provider ShippingProvider
		cfg      *config.Label
		logger   logger.Logger
		metrics  metric.Label
	}
)

func NewLabelService(
	provider ShippingProvider,
	cfg *config.Label,
	logger logger.Logger,
	metrics metric.Label,
) *LabelService {
	return &LabelService{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateLabel validates the values, quotes a shipment, buys its first rate and
// returns the label URL. Invalid values yield form.FieldErrors; every later
// failure is reported as *entity.ShipmentError.
func (ls *LabelService) CreateLabel(
	ctx context.Context,
	values *entity.FormValues,
) (*entity.Label, error) {
	const op = "service.CreateLabel"
	log := ls.logger.Ctx(ctx)

	if err := form.Validate(*values); err != nil {
		ls.metrics.Failed(StageValidate)
		log.LogAttrs(ctx, logger.WarnLevel, "label request rejected",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, fmt.Errorf("%s: validate: %w", op, err)
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOperationThreshold {
			log.LogAttrs(ctx, logger.WarnLevel, "slow label operation",
				logger.String("op", op),
				logger.String("duration", duration.String()),
			)
		}
	}()

	shipment, err := ls.quote(ctx, values)
	if err != nil {
		ls.metrics.Failed(StageQuote)
		log.LogAttrs(ctx, logger.ErrorLevel, "shipment quote failed",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, entity.NewShipmentError(err)
	}

	rate := shipment.Rates[0]
	log.LogAttrs(ctx, logger.InfoLevel, "shipment quoted",
		logger.String("op", op),
		logger.String("shipment_id", shipment.ObjectID),
		logger.Int("rates_count", len(shipment.Rates)),
		logger.String("rate_id", rate.ObjectID),
		logger.String("provider", rate.Provider),
		logger.String("amount", rate.Amount.String()+" "+rate.Currency),
	)

	transaction, err := ls.purchase(ctx, rate)
	if err != nil {
		ls.metrics.Failed(StagePurchase)
		log.LogAttrs(ctx, logger.ErrorLevel, "label purchase failed",
			logger.String("op", op),
			logger.String("rate_id", rate.ObjectID),
			logger.Any("error", err),
		)
		return nil, entity.NewShipmentError(err)
	}

	ls.metrics.Purchased(rate.Provider)
	log.LogAttrs(ctx, logger.InfoLevel, "label purchased",
		logger.String("op", op),
		logger.String("transaction_id", transaction.ObjectID),
		logger.String("tracking_number", transaction.TrackingNumber),
		logger.String("duration", time.Since(startTime).String()),
	)

	return &entity.Label{LabelURL: transaction.LabelURL}, nil
}

func (ls *LabelService) quote(
	ctx context.Context,
	values *entity.FormValues,
) (*entity.Shipment, error) {
	params := &entity.ShipmentParams{
		AddressFrom: ls.cfg.Origin.Apply(values.SenderName, values.SenderAddress),
		AddressTo:   ls.cfg.Destination.Apply(values.ReceiverName, values.ReceiverAddress),
		Parcels: []entity.Parcel{
			ls.cfg.Parcel.Apply(values.PackageWeight, values.Length, values.Width, values.Height),
		},
		Async: false,
	}

	shipment, err := ls.provider.CreateShipment(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	if len(shipment.Rates) == 0 {
		return nil, fmt.Errorf("shipment %s: %w", shipment.ObjectID, entity.ErrNoRates)
	}

	return shipment, nil
}

func (ls *LabelService) purchase(
	ctx context.Context,
	rate entity.Rate,
) (*entity.Transaction, error) {
	transaction, err := ls.provider.CreateTransaction(ctx, &entity.TransactionParams{
		Rate:          rate.ObjectID,
		LabelFileType: ls.cfg.FileType,
		Async:         false,
	})
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if transaction.Status != entity.TransactionStatusSuccess {
		return nil, &entity.PurchaseError{
			Status:   transaction.Status,
			Messages: transaction.Messages,
		}
	}

	if transaction.LabelURL == "" {
		return nil, fmt.Errorf("transaction %s: %w", transaction.ObjectID, entity.ErrEmptyLabelURL)
	}

	return transaction, nil
}
