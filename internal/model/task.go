package model

// Task is the domain model for a to-do entry.
// Only IsCompleted ever changes, and only through Toggled.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Toggled returns a copy of t with the completion flag flipped.
func (t Task) Toggled() Task {
	t.IsCompleted = !t.IsCompleted
	return t
}

// Seed returns the fixed list the screen starts with. Each call builds a new slice.
func Seed() []Task {
	return []Task{
		{ID: 1, Title: "Comprar comida", IsCompleted: false},
		{ID: 2, Title: "Estudiar Kotlin", IsCompleted: false},
		{ID: 3, Title: "Hacer ejercicio", IsCompleted: true},
	}
}
