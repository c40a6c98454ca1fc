// Package events defines the webhook/subscription surface jig consumes and
// the supervisor for the local event-forwarding subprocess.
package events

import "context"

// Subscriber registers a session for webhook events on a set of PRs.
type Subscriber interface {
	// Subscribe registers sessionID for events on the given PR numbers.
	Subscribe(ctx context.Context, sessionID string, prNumbers []int) error

	// Unsubscribe removes sessionID's registrations for the given PR numbers.
	Unsubscribe(ctx context.Context, sessionID string, prNumbers []int) error
}
