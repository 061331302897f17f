package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySKU      = errors.New("premium item has empty sku")
	ErrDuplicateSKU  = errors.New("duplicate premium item sku")
	ErrNegativePrice = errors.New("premium item price is negative")
)

// New validates items and builds a Catalog. Items are copied.
func New(artist Artist, videos Videos, event Event, items []PremiumItem) (*Catalog, error) {
	seen := make(map[string]struct{}, len(items))
	copied := make([]PremiumItem, 0, len(items))

	for _, it := range items {
		if it.SKU == "" {
			return nil, fmt.Errorf("%w (title %q)", ErrEmptySKU, it.Title)
		}
		if _, ok := seen[it.SKU]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, it.SKU)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, it.SKU)
		}
		seen[it.SKU] = struct{}{}
		it.Tracks = append([]Track(nil), it.Tracks...)
		copied = append(copied, it)
	}

	artist.Platforms = append([]Platform(nil), artist.Platforms...)
	videos.VideoIDs = append([]string(nil), videos.VideoIDs...)

	return &Catalog{artist: artist, videos: videos, event: event, items: copied}, nil
}
