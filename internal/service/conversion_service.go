package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
)

// NumberDispatcher sends translated values to the external service.
// *integration.Dispatcher implements it.
type NumberDispatcher interface {
	NumberToWords(ctx context.Context, value domain.IntegerValue) (string, error)
	NumberToDollars(ctx context.Context, value domain.DecimalValue) (string, error)
}

// ConversionService converts numbers through the external service.
type ConversionService interface {
	// ConvertNumberToWords returns the words phrase for an integer request.
	ConvertNumberToWords(ctx context.Context, req domain.ConversionRequest) (string, error)

	// ConvertNumberToDollars returns the dollars phrase for a decimal request.
	ConvertNumberToDollars(ctx context.Context, req domain.ConversionRequest) (string, error)
}

type conversionServiceImpl struct {
	dispatcher NumberDispatcher
	logger     *slog.Logger
}

// NewConversionService creates a ConversionService backed by dispatcher.
func NewConversionService(dispatcher NumberDispatcher, logger *slog.Logger) (ConversionService, error) {
	if dispatcher == nil {
		return nil, &ConversionServiceError{
			Operation: "create_service",
			Message:   "dispatcher cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &conversionServiceImpl{
		dispatcher: dispatcher,
		logger:     logger.With("component", "conversion_service"),
	}, nil
}

// ConvertNumberToWords validates req, parses it as an integer and dispatches
// it over the number-to-words channel.
func (s *conversionServiceImpl) ConvertNumberToWords(
	ctx context.Context,
	req domain.ConversionRequest,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return "", err
	}

	value, err := domain.ToWordsRequest(req.Number)
	if err != nil {
		return "", err
	}

	log.Debug("converting number to words", "number", value.String())
	return s.dispatcher.NumberToWords(ctx, value)
}

// ConvertNumberToDollars validates req, parses it as a decimal and dispatches
// it over the number-to-dollars channel.
func (s *conversionServiceImpl) ConvertNumberToDollars(
	ctx context.Context,
	req domain.ConversionRequest,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return "", err
	}

	value, err := domain.ToDollarsRequest(req.Number)
	if err != nil {
		return "", err
	}

	log.Debug("converting number to dollars", "number", value.String())
	return s.dispatcher.NumberToDollars(ctx, value)
}
