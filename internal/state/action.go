package state

// Action is the closed set of state transitions. Each variant carries its
// typed payload; the store dispatches on the concrete type, not on a name.
type Action interface {
	isAction()
}

// ToggleDarkMode flips the dark mode flag.
type ToggleDarkMode struct{}

// DismissBanner hides the welcome banner until the next run.
type DismissBanner struct{}

// Increment adds one to the counter.
type Increment struct{}

// Decrement subtracts one from the counter.
type Decrement struct{}

// Reset sets the counter back to zero.
type Reset struct{}

// AddByAmount adds Amount (which may be negative) to the counter.
type AddByAmount struct {
	Amount int
}

// AddTodo creates a new active todo with the given title.
type AddTodo struct {
	Title string
}

// ToggleTodo flips completion for the todo with the given id.
// Unknown ids are ignored.
type ToggleTodo struct {
	ID string
}

// RemoveTodo deletes the todo with the given id from either list.
// Unknown ids are ignored.
type RemoveTodo struct {
	ID string
}

// ClearTodos empties both todo lists.
type ClearTodos struct{}

func (ToggleDarkMode) isAction() {}
func (DismissBanner) isAction()  {}
func (Increment) isAction()      {}
func (Decrement) isAction()      {}
func (Reset) isAction()          {}
func (AddByAmount) isAction()    {}
func (AddTodo) isAction()        {}
func (ToggleTodo) isAction()     {}
func (RemoveTodo) isAction()     {}
func (ClearTodos) isAction()     {}
