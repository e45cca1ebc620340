package store

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// decodeAll drains a document iterator into typed records, attaching the
// document id through withID.
func decodeAll[T any](iter *firestore.DocumentIterator, withID func(*T, string)) ([]T, error) {
	var items []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		withID(&item, doc.Ref.ID)
		items = append(items, item)
	}
	return items, nil
}

// watch runs a Firestore snapshot listener for a query and pushes every
// result set as a full, decoded slice. Each emission is an authoritative
// snapshot that replaces the previous one wholesale, never a diff.
//
// The returned func tears the listener down; callers that skip it leak a
// standing listener. On a stream error the helper logs and closes the
// channel, so readers simply stop receiving updates.
func watch[T any](ctx context.Context, name string, q firestore.Query, withID func(*T, string), prepare func([]T)) (<-chan []T, func()) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan []T, 1)
	snaps := q.Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("Error in %s listener: %v", name, err)
				}
				return
			}
			items, err := decodeAll(snap.Documents, withID)
			if err != nil {
				log.Printf("Error decoding %s snapshot: %v", name, err)
				continue
			}
			if prepare != nil {
				prepare(items)
			}
			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel
}
