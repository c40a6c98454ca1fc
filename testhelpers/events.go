package testhelpers

import (
	"context"
	"sync"
)

// Subscription records one call to a FakeSubscriber.
type Subscription struct {
	SessionID string
	PRNumbers []int
}

// FakeSubscriber records webhook subscription calls.
type FakeSubscriber struct {
	mu            sync.Mutex
	Subscriptions []Subscription
	Err           error
}

// NewFakeSubscriber creates an empty FakeSubscriber.
func NewFakeSubscriber() *FakeSubscriber {
	return &FakeSubscriber{}
}

func (f *FakeSubscriber) Subscribe(_ context.Context, sessionID string, prNumbers []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Subscriptions = append(f.Subscriptions, Subscription{SessionID: sessionID, PRNumbers: prNumbers})
	return nil
}

func (f *FakeSubscriber) Unsubscribe(_ context.Context, _ string, _ []int) error {
	return f.Err
}

// Last returns the most recent subscription, or nil.
func (f *FakeSubscriber) Last() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Subscriptions) == 0 {
		return nil
	}
	last := f.Subscriptions[len(f.Subscriptions)-1]
	return &last
}
