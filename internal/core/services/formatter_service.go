package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/display_helpers/internal/apperrors"
	"github.com/SscSPs/display_helpers/internal/core/domain"
	portssvc "github.com/SscSPs/display_helpers/internal/core/ports/services"
	"github.com/SscSPs/display_helpers/internal/utils"
)

// DefaultMaxBatchSize bounds batch requests when no option overrides it.
const DefaultMaxBatchSize = 100

// formatterService implements the FormatterSvcFacade interface
type formatterService struct {
	BaseService
	dates        *utils.DateFormatter
	ids          *utils.IDGenerator
	maxBatchSize int
}

// FormatterOption is a functional option for configuring the formatter service
type FormatterOption func(*formatterService)

// WithLocation renders dates in loc instead of UTC
func WithLocation(loc *time.Location) FormatterOption {
	return func(s *formatterService) {
		s.dates = utils.NewDateFormatter(loc)
	}
}

// WithIDGenerator replaces the identifier generator
func WithIDGenerator(g *utils.IDGenerator) FormatterOption {
	return func(s *formatterService) {
		s.ids = g
	}
}

// WithMaxBatchSize bounds batch sizes and id counts
func WithMaxBatchSize(n int) FormatterOption {
	return func(s *formatterService) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// NewFormatterService creates a new formatter service with the provided options
func NewFormatterService(options ...FormatterOption) portssvc.FormatterSvcFacade {
	svc := &formatterService{
		dates:        utils.NewDateFormatter(time.UTC),
		ids:          utils.NewIDGenerator(),
		maxBatchSize: DefaultMaxBatchSize,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure formatterService implements the FormatterSvcFacade interface
var _ portssvc.FormatterSvcFacade = (*formatterService)(nil)

func (s *formatterService) FormatCurrency(ctx context.Context, amount any) domain.FormattedValue {
	result := domain.FormattedValue{
		Input:     amount,
		Formatted: utils.FormatCurrency(amount),
	}
	if d, ok := utils.ParseAmount(amount); ok {
		result.Valid = true
		result.Rounded = utils.FormatWithCurrencyPrecision(d, domain.USD)
	}

	s.LogDebug(ctx, "Formatted currency",
		slog.String("formatted", result.Formatted),
		slog.Bool("valid", result.Valid))
	return result
}

func (s *formatterService) FormatCurrencyBatch(ctx context.Context, amounts []any) (*domain.FormattedBatch, error) {
	if err := s.checkBatchSize(len(amounts)); err != nil {
		s.LogError(ctx, err, "Rejected currency batch", slog.Int("size", len(amounts)))
		return nil, err
	}

	batch := &domain.FormattedBatch{Items: make([]domain.FormattedValue, len(amounts))}
	for i, amount := range amounts {
		batch.Items[i] = s.FormatCurrency(ctx, amount)
	}
	return batch, nil
}

func (s *formatterService) FormatDate(ctx context.Context, date any) domain.FormattedValue {
	_, ok := s.dates.Parse(date)
	result := domain.FormattedValue{
		Input:     date,
		Formatted: s.dates.Format(date),
		Valid:     ok,
	}

	s.LogDebug(ctx, "Formatted date",
		slog.String("formatted", result.Formatted),
		slog.Bool("valid", result.Valid))
	return result
}

func (s *formatterService) FormatDateBatch(ctx context.Context, dates []any) (*domain.FormattedBatch, error) {
	if err := s.checkBatchSize(len(dates)); err != nil {
		s.LogError(ctx, err, "Rejected date batch", slog.Int("size", len(dates)))
		return nil, err
	}

	batch := &domain.FormattedBatch{Items: make([]domain.FormattedValue, len(dates))}
	for i, date := range dates {
		batch.Items[i] = s.FormatDate(ctx, date)
	}
	return batch, nil
}

func (s *formatterService) GenerateIDs(ctx context.Context, count int) ([]string, error) {
	if err := s.checkBatchSize(count); err != nil {
		s.LogError(ctx, err, "Rejected id request", slog.Int("count", count))
		return nil, err
	}

	ids := make([]string, count)
	for i := range ids {
		ids[i] = s.ids.Generate()
	}
	s.LogDebug(ctx, "Generated ids", slog.Int("count", count))
	return ids, nil
}

func (s *formatterService) checkBatchSize(n int) error {
	if n < 1 || n > s.maxBatchSize {
		return fmt.Errorf("%w: size must be between 1 and %d, got %d", apperrors.ErrValidation, s.maxBatchSize, n)
	}
	return nil
}
