package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
	"github.com/phrazzld/numconv-api/internal/platform/soap"
)

// NumberConversionClient is the external service surface the dispatcher
// drives. *soap.Client implements it.
type NumberConversionClient interface {
	NumberToWords(ctx context.Context, ubiNum string) (string, error)
	NumberToDollars(ctx context.Context, dNum string) (string, error)
}

var _ NumberConversionClient = (*soap.Client)(nil)

// Response is the successful outcome of an exchange.
type Response struct {
	Channel    domain.Channel
	ExchangeID string
	Result     string
}

type handlerFunc func(ctx context.Context, value interface{}) (string, error)

// Dispatcher maps channels to external calls. The table is built once and
// never modified, so a single Dispatcher serves all requests.
type Dispatcher struct {
	client   NumberConversionClient
	handlers map[domain.Channel]handlerFunc
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher backed by client.
func NewDispatcher(client NumberConversionClient, log *slog.Logger) (*Dispatcher, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	d := &Dispatcher{
		client: client,
		logger: log.With("component", "integration_dispatcher"),
	}
	d.handlers = map[domain.Channel]handlerFunc{
		domain.ChannelNumberToWords:   d.numberToWords,
		domain.ChannelNumberToDollars: d.numberToDollars,
	}
	for _, ch := range domain.Channels() {
		if _, ok := d.handlers[ch]; !ok {
			return nil, fmt.Errorf("no handler for channel %q", ch)
		}
	}
	return d, nil
}

// Invoke sends value over channel and blocks until the external service
// answers, ctx ends, or the client timeout fires. Exactly one attempt is made.
// Every failure is an *IntegrationError.
func (d *Dispatcher) Invoke(ctx context.Context, channel domain.Channel, value interface{}) (Response, error) {
	exchangeID := uuid.New().String()
	log := logger.FromContextOrDefault(ctx, d.logger).With(
		"channel", channel.String(),
		"exchange_id", exchangeID,
	)

	handler, ok := d.handlers[channel]
	if !ok {
		log.Warn("no handler registered for channel")
		return Response{}, NewIntegrationError(channel, StepTranslatingRequest,
			fmt.Errorf("%w: %q", domain.ErrUnknownChannel, channel))
	}

	start := time.Now()
	result, err := handler(ctx, value)
	if err != nil {
		ierr := classify(channel, err)
		log.Debug("external exchange failed",
			"step", ierr.Step.String(),
			"duration_ms", time.Since(start).Milliseconds())
		return Response{}, ierr
	}

	log.Debug("external exchange completed",
		"duration_ms", time.Since(start).Milliseconds())

	return Response{Channel: channel, ExchangeID: exchangeID, Result: result}, nil
}

// NumberToWords sends value over the number-to-words channel.
func (d *Dispatcher) NumberToWords(ctx context.Context, value domain.IntegerValue) (string, error) {
	resp, err := d.Invoke(ctx, domain.ChannelNumberToWords, value)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

// NumberToDollars sends value over the number-to-dollars channel.
func (d *Dispatcher) NumberToDollars(ctx context.Context, value domain.DecimalValue) (string, error) {
	resp, err := d.Invoke(ctx, domain.ChannelNumberToDollars, value)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (d *Dispatcher) numberToWords(ctx context.Context, value interface{}) (string, error) {
	var n domain.IntegerValue
	switch v := value.(type) {
	case domain.IntegerValue:
		n = v
	case *domain.IntegerValue:
		if v == nil {
			return "", unsupported(value)
		}
		n = *v
	default:
		return "", unsupported(value)
	}
	return d.client.NumberToWords(ctx, n.String())
}

func (d *Dispatcher) numberToDollars(ctx context.Context, value interface{}) (string, error) {
	var n domain.DecimalValue
	switch v := value.(type) {
	case domain.DecimalValue:
		n = v
	case *domain.DecimalValue:
		if v == nil {
			return "", unsupported(value)
		}
		n = *v
	default:
		return "", unsupported(value)
	}
	return d.client.NumberToDollars(ctx, n.String())
}

func unsupported(value interface{}) error {
	return &translationError{err: fmt.Errorf("%w: %T", ErrUnsupportedValue, value)}
}

// translationError marks failures that happen before anything is sent.
type translationError struct {
	err error
}

func (e *translationError) Error() string { return e.err.Error() }
func (e *translationError) Unwrap() error { return e.err }

// classify wraps a handler failure in an IntegrationError labelled with the
// step it happened in.
func classify(channel domain.Channel, err error) *IntegrationError {
	var ierr *IntegrationError
	if errors.As(err, &ierr) {
		return ierr
	}

	var terr *translationError
	if errors.As(err, &terr) {
		return NewIntegrationError(channel, StepTranslatingRequest, terr.err)
	}

	var callErr *soap.CallError
	if errors.As(err, &callErr) {
		switch callErr.Stage {
		case soap.StageEncode:
			return NewIntegrationError(channel, StepTranslatingRequest, callErr.Err)
		case soap.StageDecode:
			return NewIntegrationError(channel, StepParsingResponse, callErr.Err)
		default:
			return NewIntegrationError(channel, StepCallingExternalService, callErr.Err)
		}
	}

	return NewIntegrationError(channel, StepCallingExternalService, err)
}
