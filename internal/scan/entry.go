package scan

import "glycoscan/internal/food"

// Entry is the persisted record of a completed scan: a reference to the
// analyzed food plus when it happened. Intentionally small — image data
// never goes to durable storage.
type Entry struct {
	ID        string `json:"id"`
	FoodID    string `json:"foodId"`
	FoodName  string `json:"foodName"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// RuntimeEntry is an Entry plus the local-only image reference. It
// lives only in process memory.
type RuntimeEntry struct {
	Entry
	ImageRef string `json:"imageRef,omitempty"`
}

// Session tracks one in-progress scan. There is exactly one scan slot;
// starting a new scan replaces whatever was in flight.
type Session struct {
	InProgress bool         `json:"inProgress"`
	ImageRef   string       `json:"imageRef,omitempty"`
	Result     *food.Record `json:"result,omitempty"`
}
