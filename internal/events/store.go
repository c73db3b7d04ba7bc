package events

import "time"

// StoreCall is emitted after an entity store operation completes. It
// carries both the start time and the duration so that subscribers can
// reconstruct a span without correlating separate start/finish events
// (store calls for one request may run concurrently).
type StoreCall struct {
	Collection string
	Op         string
	Err        error
	Start      time.Time
	Duration   time.Duration
}
