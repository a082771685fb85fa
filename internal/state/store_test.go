package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/markcj-boi/StateWithRedux/internal/model"
)

// newFixedStore pins the clock and id source so assertions are deterministic.
func newFixedStore() *Store {
	s := New()
	var n int
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	s.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestInitialState(t *testing.T) {
	snap := New().Snapshot()

	require.False(t, snap.UI.DarkMode)
	require.True(t, snap.UI.ShowBanner)
	require.Equal(t, 0, snap.Counter.Value)
	require.Empty(t, snap.Todos.Items)
	require.Empty(t, snap.Todos.DoneItems)
}

func TestCounterAccumulates(t *testing.T) {
	s := New()

	s.Dispatch(Increment{})
	s.Dispatch(Increment{})
	s.Dispatch(AddByAmount{Amount: 40})
	s.Dispatch(Decrement{})
	require.Equal(t, 41, s.Snapshot().Counter.Value)

	s.Dispatch(Reset{})
	require.Equal(t, 0, s.Snapshot().Counter.Value)

	s.Dispatch(AddByAmount{Amount: -7})
	require.Equal(t, -7, s.Snapshot().Counter.Value)
}

func TestToggleDarkModeIsInvolution(t *testing.T) {
	s := New()

	s.Dispatch(ToggleDarkMode{})
	require.True(t, s.Snapshot().UI.DarkMode)

	s.Dispatch(ToggleDarkMode{})
	require.False(t, s.Snapshot().UI.DarkMode)
}

func TestDismissBanner(t *testing.T) {
	s := New()

	s.Dispatch(DismissBanner{})
	require.False(t, s.Snapshot().UI.ShowBanner)

	// Dismissing twice changes nothing.
	s.Dispatch(DismissBanner{})
	require.False(t, s.Snapshot().UI.ShowBanner)
}

func TestAddTodoInsertsAtFront(t *testing.T) {
	s := newFixedStore()

	s.Dispatch(AddTodo{Title: "Buy milk"})
	s.Dispatch(AddTodo{Title: "Walk dog"})

	snap := s.Snapshot()
	require.Len(t, snap.Todos.Items, 2)
	require.Equal(t, "Walk dog", snap.Todos.Items[0].Title)
	require.Equal(t, "Buy milk", snap.Todos.Items[1].Title)

	first := snap.Todos.Items[1]
	require.False(t, first.Done)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())
	require.NotEqual(t, snap.Todos.Items[0].ID, first.ID)
}

func TestToggleTodoMovesBetweenLists(t *testing.T) {
	s := newFixedStore()
	s.Dispatch(AddTodo{Title: "one"})   // id-1
	s.Dispatch(AddTodo{Title: "two"})   // id-2
	s.Dispatch(AddTodo{Title: "three"}) // id-3

	// Completing id-2 appends it to the done list.
	s.Dispatch(ToggleTodo{ID: "id-2"})
	snap := s.Snapshot()
	require.Equal(t, []string{"id-3", "id-1"}, ids(snap.Todos.Items))
	require.Equal(t, []string{"id-2"}, ids(snap.Todos.DoneItems))
	require.True(t, snap.Todos.DoneItems[0].Done)

	// A second completed item lands behind the first.
	s.Dispatch(ToggleTodo{ID: "id-3"})
	snap = s.Snapshot()
	require.Equal(t, []string{"id-2", "id-3"}, ids(snap.Todos.DoneItems))

	// Reopening id-2 puts it at the front of the active list.
	s.Dispatch(ToggleTodo{ID: "id-2"})
	snap = s.Snapshot()
	require.Equal(t, []string{"id-2", "id-1"}, ids(snap.Todos.Items))
	require.Equal(t, []string{"id-3"}, ids(snap.Todos.DoneItems))
	require.False(t, snap.Todos.Items[0].Done)
}

func TestToggleTodoUnknownIDIsNoop(t *testing.T) {
	s := newFixedStore()
	s.Dispatch(AddTodo{Title: "one"})
	before := s.Snapshot()

	s.Dispatch(ToggleTodo{ID: "nope"})
	require.Equal(t, before, s.Snapshot())
}

func TestRemoveTodo(t *testing.T) {
	s := newFixedStore()
	s.Dispatch(AddTodo{Title: "one"}) // id-1
	s.Dispatch(AddTodo{Title: "two"}) // id-2
	s.Dispatch(ToggleTodo{ID: "id-1"})

	s.Dispatch(RemoveTodo{ID: "id-2"})
	s.Dispatch(RemoveTodo{ID: "id-1"})
	snap := s.Snapshot()
	require.Empty(t, snap.Todos.Items)
	require.Empty(t, snap.Todos.DoneItems)

	// Removing an absent id leaves both lists unchanged.
	s.Dispatch(AddTodo{Title: "three"})
	before := s.Snapshot()
	s.Dispatch(RemoveTodo{ID: "gone"})
	require.Equal(t, before, s.Snapshot())
}

func TestClearTodos(t *testing.T) {
	s := newFixedStore()
	s.Dispatch(AddTodo{Title: "one"})
	s.Dispatch(AddTodo{Title: "two"})
	s.Dispatch(ToggleTodo{ID: "id-1"})

	s.Dispatch(ClearTodos{})
	snap := s.Snapshot()
	require.Empty(t, snap.Todos.Items)
	require.Empty(t, snap.Todos.DoneItems)
}

// Every id must live in exactly one list at any point of an arbitrary
// transition sequence.
func TestTodoListsStayDisjoint(t *testing.T) {
	s := newFixedStore()
	seq := []Action{
		AddTodo{Title: "a"},
		AddTodo{Title: "b"},
		ToggleTodo{ID: "id-1"},
		AddTodo{Title: "c"},
		ToggleTodo{ID: "id-1"},
		ToggleTodo{ID: "id-3"},
		RemoveTodo{ID: "id-2"},
		ToggleTodo{ID: "missing"},
		AddTodo{Title: "d"},
		ToggleTodo{ID: "id-4"},
	}

	for _, a := range seq {
		s.Dispatch(a)

		snap := s.Snapshot()
		seen := map[string]int{}
		for _, t2 := range snap.Todos.Items {
			seen[t2.ID]++
		}
		for _, t2 := range snap.Todos.DoneItems {
			seen[t2.ID]++
		}
		for id, n := range seen {
			require.Equal(t, 1, n, "id %s appears %d times after %T", id, n, a)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newFixedStore()
	s.Dispatch(AddTodo{Title: "keep me"})

	snap := s.Snapshot()
	snap.Todos.Items[0].Title = "mutated"
	snap.Counter.Value = 99

	fresh := s.Snapshot()
	require.Equal(t, "keep me", fresh.Todos.Items[0].Title)
	require.Equal(t, 0, fresh.Counter.Value)
}

func ids(todos []model.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}
