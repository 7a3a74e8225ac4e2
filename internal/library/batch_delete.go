package library

import (
	"context"
	"fmt"
)

// BatchDelete removes a mixed set of videos and playlists in one
// all-or-nothing transaction. Unknown kinds are rejected before any row is
// touched; a statement failure inside the store rolls everything back, so
// partial deletion is never observable.
func BatchDelete(ctx context.Context, store Store, userID int32, items []DeleteItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items selected", ErrInvalidInput)
	}
	for _, item := range items {
		switch item.Type {
		case "video", "playlist":
		default:
			return fmt.Errorf("%w: unsupported item type %q", ErrInvalidInput, item.Type)
		}
	}

	return store.BatchDelete(ctx, userID, items)
}
