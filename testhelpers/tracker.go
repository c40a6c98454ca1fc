package testhelpers

import (
	"context"
	"fmt"

	"jig.dev/jig/internal/tracker"
)

// FakeTracker is an in-memory tracker.Client.
type FakeTracker struct {
	Tasks       map[string]*tracker.Task
	BranchNames map[string]string
	Err         error
}

// NewFakeTracker creates an empty FakeTracker.
func NewFakeTracker() *FakeTracker {
	return &FakeTracker{
		Tasks:       make(map[string]*tracker.Task),
		BranchNames: make(map[string]string),
	}
}

func (f *FakeTracker) GetTask(_ context.Context, id string) (*tracker.Task, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	task, ok := f.Tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s not found", id)
	}
	copied := *task
	return &copied, nil
}

func (f *FakeTracker) BranchName(_ context.Context, id string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.BranchNames[id], nil
}
