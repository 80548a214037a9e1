package domain

// FormattedValue is the display string produced for a single input.
// Valid is false when the input could not be coerced and Formatted holds
// a sentinel such as "$NaN" or "Invalid Date".
type FormattedValue struct {
	Input     any    `json:"input"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`

	// Rounded is the plain amount at currency precision; empty for dates.
	Rounded string `json:"rounded,omitempty"`
}

// FormattedBatch holds the results of a batch request in input order.
type FormattedBatch struct {
	Items []FormattedValue `json:"items"`
}
