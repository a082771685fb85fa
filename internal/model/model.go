package model

import "time"

// Todo is the domain model for a single todo entry.
// Kept minimal on purpose; it’s easy to evolve.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// UIState holds screen-level flags.
type UIState struct {
	DarkMode   bool `json:"darkMode"`
	ShowBanner bool `json:"showBanner"`
}

// CounterState holds the demo counter. Unbounded; overflow is not handled.
type CounterState struct {
	Value int `json:"value"`
}

// TodosState partitions all todos into two ordered lists. A todo id lives
// in exactly one of them, never both.
type TodosState struct {
	Items     []Todo `json:"items"`     // active, newest first
	DoneItems []Todo `json:"doneItems"` // completed, in completion order
}

// AppState is the full application state: three independent partitions.
type AppState struct {
	UI      UIState      `json:"ui"`
	Counter CounterState `json:"counter"`
	Todos   TodosState   `json:"todos"`
}
