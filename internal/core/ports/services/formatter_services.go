package services

import (
	"context"

	"github.com/SscSPs/display_helpers/internal/core/domain"
)

// CurrencyFormatterSvc renders amounts as US dollars.
type CurrencyFormatterSvc interface {
	// FormatCurrency formats a single amount. Invalid input yields a sentinel, not an error.
	FormatCurrency(ctx context.Context, amount any) domain.FormattedValue

	// FormatCurrencyBatch formats amounts in order. Fails with apperrors.ErrValidation
	// when the batch is empty or larger than the configured maximum.
	FormatCurrencyBatch(ctx context.Context, amounts []any) (*domain.FormattedBatch, error)
}

// DateFormatterSvc renders dates in the long Spanish form.
type DateFormatterSvc interface {
	// FormatDate formats a single date. Invalid input yields a sentinel, not an error.
	FormatDate(ctx context.Context, date any) domain.FormattedValue

	// FormatDateBatch formats dates in order, with the same bounds as FormatCurrencyBatch.
	FormatDateBatch(ctx context.Context, dates []any) (*domain.FormattedBatch, error)
}

// IDGeneratorSvc hands out opaque identifiers.
type IDGeneratorSvc interface {
	// GenerateIDs returns count identifiers. Fails with apperrors.ErrValidation
	// when count is out of range.
	GenerateIDs(ctx context.Context, count int) ([]string, error)
}

// FormatterSvcFacade combines all formatting service interfaces
type FormatterSvcFacade interface {
	CurrencyFormatterSvc
	DateFormatterSvc
	IDGeneratorSvc
}
