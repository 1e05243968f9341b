// Package taskstore holds the screen-local task snapshot and the toggle rule.
package taskstore

import "github.com/idilsaglam/tareas/internal/model"

// Toggle returns a new slice where the task matching id has its completion
// flag negated. Other tasks are copied as-is and order is kept.
// An unknown id returns tasks itself, untouched.
func Toggle(tasks []model.Task, id int) []model.Task {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	out[idx] = out[idx].Toggled()
	return out
}

func indexOf(tasks []model.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Store owns the current snapshot for one screen. Not safe for concurrent
// use; the screen that creates it is its only writer.
type Store struct {
	tasks   []model.Task
	version uint64
}

// New returns a store holding a copy of seed.
func New(seed []model.Task) *Store {
	tasks := make([]model.Task, len(seed))
	copy(tasks, seed)
	return &Store{tasks: tasks}
}

// NewSeeded returns a store initialised with model.Seed.
func NewSeeded() *Store { return New(model.Seed()) }

// Snapshot returns a copy of the current tasks.
func (s *Store) Snapshot() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len is the number of tasks held.
func (s *Store) Len() int { return len(s.tasks) }

// Version is the snapshot generation; it grows by one per effective toggle.
func (s *Store) Version() uint64 { return s.version }

// Toggle replaces the snapshot with Toggle(snapshot, id).
// It reports whether a task actually flipped.
func (s *Store) Toggle(id int) bool {
	if indexOf(s.tasks, id) < 0 {
		return false
	}
	s.tasks = Toggle(s.tasks, id)
	s.version++
	return true
}

// Find looks a task up by id.
func (s *Store) Find(id int) (model.Task, bool) {
	if i := indexOf(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Stats counts completed and pending tasks.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return
}
