package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/markcj-boi/StateWithRedux/internal/model"
)

// Store owns the three state partitions. Consumers read snapshots and
// dispatch actions; nothing else mutates the state.
//
// All transitions are synchronous and total: Dispatch never fails, and
// actions referencing unknown todo ids are no-ops rather than errors.
type Store struct {
	state model.AppState

	now   func() time.Time
	newID func() string
}

// New returns a store holding the initial state.
func New() *Store {
	return &Store{
		state: Initial(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Initial is the state at process start: banner shown, light mode, zero
// counter, no todos.
func Initial() model.AppState {
	return model.AppState{
		UI: model.UIState{ShowBanner: true},
	}
}

// Dispatch applies one transition to the current state.
func (s *Store) Dispatch(a Action) {
	switch a := a.(type) {
	case ToggleDarkMode:
		s.state.UI.DarkMode = !s.state.UI.DarkMode
	case DismissBanner:
		s.state.UI.ShowBanner = false
	case Increment:
		s.state.Counter.Value++
	case Decrement:
		s.state.Counter.Value--
	case Reset:
		s.state.Counter.Value = 0
	case AddByAmount:
		s.state.Counter.Value += a.Amount
	case AddTodo:
		t := model.Todo{
			ID:        s.newID(),
			Title:     a.Title,
			CreatedAt: s.now(),
		}
		s.state.Todos = addTodo(s.state.Todos, t)
	case ToggleTodo:
		s.state.Todos = toggleTodo(s.state.Todos, a.ID)
	case RemoveTodo:
		s.state.Todos = removeTodo(s.state.Todos, a.ID)
	case ClearTodos:
		s.state.Todos = model.TodosState{}
	}
}

// Snapshot returns a copy of the current state. The todo slices are cloned
// so callers can never mutate the store through a snapshot.
func (s *Store) Snapshot() model.AppState {
	snap := s.state
	snap.Todos.Items = cloneTodos(s.state.Todos.Items)
	snap.Todos.DoneItems = cloneTodos(s.state.Todos.DoneItems)
	return snap
}

// ---------------------------------------------------
// Pure per-partition reducers for the todos list
// ---------------------------------------------------

// addTodo inserts a fresh item at the front of the active list.
func addTodo(ts model.TodosState, t model.Todo) model.TodosState {
	ts.Items = append([]model.Todo{t}, ts.Items...)
	return ts
}

// toggleTodo flips completion for id. A newly done item goes to the back of
// the done list; a reopened item goes to the front of the active list.
// Unknown ids leave the state untouched.
func toggleTodo(ts model.TodosState, id string) model.TodosState {
	for i, t := range ts.Items {
		if t.ID == id {
			t.Done = true
			ts.Items = append(ts.Items[:i:i], ts.Items[i+1:]...)
			ts.DoneItems = append(cloneTodos(ts.DoneItems), t)
			return ts
		}
	}
	for i, t := range ts.DoneItems {
		if t.ID == id {
			t.Done = false
			ts.DoneItems = append(ts.DoneItems[:i:i], ts.DoneItems[i+1:]...)
			ts.Items = append([]model.Todo{t}, ts.Items...)
			return ts
		}
	}
	return ts
}

// removeTodo drops id from both lists; absent ids are a no-op.
func removeTodo(ts model.TodosState, id string) model.TodosState {
	for i, t := range ts.Items {
		if t.ID == id {
			ts.Items = append(ts.Items[:i:i], ts.Items[i+1:]...)
			return ts
		}
	}
	for i, t := range ts.DoneItems {
		if t.ID == id {
			ts.DoneItems = append(ts.DoneItems[:i:i], ts.DoneItems[i+1:]...)
			return ts
		}
	}
	return ts
}

func cloneTodos(in []model.Todo) []model.Todo {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Todo, len(in))
	copy(out, in)
	return out
}
