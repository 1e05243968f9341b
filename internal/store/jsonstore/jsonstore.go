// Package jsonstore encodes task snapshots as human-readable JSON.
// It works on streams only; tasks are never written to disk.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/tareas/internal/model"
)

// Encode writes tasks as an indented JSON array.
func Encode(w io.Writer, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// Decode reads a JSON array produced by Encode.
func Decode(r io.Reader) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.NewDecoder(r).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
