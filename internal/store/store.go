// Package store holds the in-memory task list for the process lifetime.
package store

import "sync"

// TaskStore is an ordered, mutable collection of task descriptions.
// Positions are zero-based and dense: removing position i shifts every
// later task down by one.
//
// The store is guarded by a mutex because the HTTP server handles each
// request on its own goroutine.
type TaskStore struct {
	mu    sync.Mutex
	tasks []string
}

// New returns an empty TaskStore.
func New() *TaskStore {
	return &TaskStore{}
}

// List returns a snapshot of the current tasks in insertion order.
func (s *TaskStore) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Append adds a task to the end of the list. An empty description is
// silently ignored.
func (s *TaskStore) Append(description string) {
	if description == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, description)
}

// RemoveAt deletes the task at the given position and shifts later tasks
// down by one. Out-of-range positions, including negative ones, are
// silently ignored.
func (s *TaskStore) RemoveAt(position int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.tasks) {
		return
	}
	s.tasks = append(s.tasks[:position], s.tasks[position+1:]...)
}

// Count returns the number of tasks currently stored.
func (s *TaskStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
