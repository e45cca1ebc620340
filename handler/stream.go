package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamSnapshots forwards live store snapshots to the client as SSE events.
// Every event carries the complete result set for the query, so the client
// replaces its state wholesale on each one. The subscription is torn down
// when the client disconnects or the listener ends.
func streamSnapshots[T any](c *gin.Context, snapshots <-chan []T, stop func()) {
	defer stop()
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		items, ok := <-snapshots
		if !ok {
			return false
		}
		if items == nil {
			items = []T{}
		}
		c.SSEvent("snapshot", items)
		return true
	})
}
