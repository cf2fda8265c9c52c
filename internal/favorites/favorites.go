// Package favorites builds an O(1) membership index over a user's favorites.
//
// The index is derived state: callers rebuild it from the refreshed favorites
// list after every write instead of patching it in place, so it can never
// carry stale keys. It is passed around as an immutable snapshot value.
package favorites

import (
	"fmt"

	"github.com/innerascend/ascend/internal/models"
)

// Index answers isFavorited lookups in O(1). The zero value is an empty,
// usable index.
type Index struct {
	keys map[string]struct{}
}

// Build creates an index from a flat favorites list.
func Build(favs []models.Favorite) Index {
	keys := make(map[string]struct{}, len(favs))
	for _, f := range favs {
		keys[key(f.ItemType, f.ItemID)] = struct{}{}
	}
	return Index{keys: keys}
}

// IsFavorited reports whether the item is bookmarked. The composite key keeps
// an event and a place that share an ID from colliding.
func (ix Index) IsFavorited(itemType models.ItemType, itemID string) bool {
	_, ok := ix.keys[key(itemType, itemID)]
	return ok
}

// Len returns the number of distinct favorited items.
func (ix Index) Len() int {
	return len(ix.keys)
}

func key(itemType models.ItemType, itemID string) string {
	return fmt.Sprintf("%s-%s", itemType, itemID)
}
