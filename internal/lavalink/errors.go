package lavalink

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is returned when the Lavalink node never produces a
	// response: connection refused, DNS failure, or the bounded wait expiring.
	ErrUnreachable = errors.New("lavalink node unreachable")

	// ErrNoSession is returned by player operations when no session id is
	// available. Distinct from an upstream HTTP failure so callers can decide
	// whether to retry after establishing a session.
	ErrNoSession = errors.New("no lavalink session id")
)

// UpstreamError is returned when the Lavalink node responds with a 4xx or 5xx
// status. The body is kept verbatim so callers can surface or log the error
// JSON the node produced.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lavalink returned status %d", e.Status)
	}
	return fmt.Sprintf("lavalink returned status %d: %s", e.Status, e.Body)
}
