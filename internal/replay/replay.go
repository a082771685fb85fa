package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/markcj-boi/StateWithRedux/internal/model"
	"github.com/markcj-boi/StateWithRedux/internal/state"
)

// JSON-scripted transitions. Single file, human-readable, portable.
// The string tags exist only at this file boundary; the store itself
// dispatches on typed actions.

// record is one scripted transition.
type record struct {
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	ID     string `json:"id,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

// Load reads a script file: a JSON array of transition records.
func Load(path string) ([]state.Action, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(b)
}

// Parse decodes script bytes into typed actions. A malformed or unknown
// record is an error here; the transitions themselves never fail.
func Parse(b []byte) ([]state.Action, error) {
	var recs []record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	actions := make([]state.Action, 0, len(recs))
	for i, r := range recs {
		a, err := r.action()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (r record) action() (state.Action, error) {
	switch r.Type {
	case "toggleDarkMode":
		return state.ToggleDarkMode{}, nil
	case "dismissBanner":
		return state.DismissBanner{}, nil
	case "increment":
		return state.Increment{}, nil
	case "decrement":
		return state.Decrement{}, nil
	case "reset":
		return state.Reset{}, nil
	case "addByAmount":
		return state.AddByAmount{Amount: r.Amount}, nil
	case "addTodo":
		return state.AddTodo{Title: r.Title}, nil
	case "toggleTodo":
		return state.ToggleTodo{ID: r.ID}, nil
	case "removeTodo":
		return state.RemoveTodo{ID: r.ID}, nil
	case "clearTodos":
		return state.ClearTodos{}, nil
	}
	return nil, fmt.Errorf("unknown transition %q", r.Type)
}

// Run applies the scripted transitions, in order, to a fresh store and
// returns the final snapshot.
func Run(actions []state.Action) model.AppState {
	s := state.New()
	for _, a := range actions {
		s.Dispatch(a)
	}
	return s.Snapshot()
}

// Dump renders a snapshot as indented JSON.
func Dump(snap model.AppState) ([]byte, error) {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
