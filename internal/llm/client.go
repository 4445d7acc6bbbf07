package llm

import (
	"context"

	"glycoscan/internal/food"
)

// Client turns a food image or a food name into a normalized record.
// Implementations must only fail on transport-class errors; a garbled
// model reply degrades into a best-effort record instead.
type Client interface {
	AnalyzeImage(ctx context.Context, jpeg []byte) (*food.Record, error)
	AnalyzeText(ctx context.Context, name string) (*food.Record, error)
}
