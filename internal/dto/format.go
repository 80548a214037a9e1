package dto

import "github.com/SscSPs/display_helpers/internal/core/domain"

// FormatCurrencyRequest carries a single amount. Any JSON value is accepted;
// values that are not numbers come back as a sentinel.
type FormatCurrencyRequest struct {
	Amount any `json:"amount" swaggertype:"string" example:"1234.5"`
}

// FormatCurrencyBatchRequest carries several amounts.
type FormatCurrencyBatchRequest struct {
	Amounts []any `json:"amounts" binding:"required,min=1" swaggertype:"array,string"`
}

// FormatDateRequest carries a single date: milliseconds since the epoch or a date string.
type FormatDateRequest struct {
	Date any `json:"date" swaggertype:"string" example:"2024-03-05"`
}

// FormatDateBatchRequest carries several dates.
type FormatDateBatchRequest struct {
	Dates []any `json:"dates" binding:"required,min=1" swaggertype:"array,string"`
}

// GenerateIDsParams are the query parameters of the id endpoint.
type GenerateIDsParams struct {
	Count int `form:"count,default=1" binding:"min=1"`
}

// FormattedResponse is returned for a single formatting request.
type FormattedResponse struct {
	Input     any    `json:"input" swaggertype:"string"`
	Formatted string `json:"formatted" example:"$1,234.50"`
	Valid     bool   `json:"valid" example:"true"`
	Rounded   string `json:"rounded,omitempty" example:"1234.5"`
}

// FormattedBatchResponse is returned for a batch request.
type FormattedBatchResponse struct {
	Items []FormattedResponse `json:"items"`
}

// GenerateIDsResponse lists freshly generated identifiers.
type GenerateIDsResponse struct {
	IDs []string `json:"ids"`
}

// ToFormattedResponse converts a domain.FormattedValue to its DTO
func ToFormattedResponse(v domain.FormattedValue) FormattedResponse {
	return FormattedResponse{
		Input:     v.Input,
		Formatted: v.Formatted,
		Valid:     v.Valid,
		Rounded:   v.Rounded,
	}
}

// ToFormattedBatchResponse converts a domain.FormattedBatch to its DTO
func ToFormattedBatchResponse(b *domain.FormattedBatch) FormattedBatchResponse {
	res := FormattedBatchResponse{Items: make([]FormattedResponse, len(b.Items))}
	for i, item := range b.Items {
		res.Items[i] = ToFormattedResponse(item) // Reuse the single converter
	}
	return res
}
