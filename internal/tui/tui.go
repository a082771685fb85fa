package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markcj-boi/StateWithRedux/internal/model"
	"github.com/markcj-boi/StateWithRedux/internal/state"
	"github.com/markcj-boi/StateWithRedux/internal/ui"
)

// listItem adapts a Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	styles ui.Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := d.styles.Muted.Render(d.styles.BoxUnchecked)
	text := it.todo.Title
	if it.todo.Done {
		box = d.styles.Success.Render(d.styles.BoxChecked)
		text = d.styles.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type screenModel struct {
	store  *state.Store
	list   list.Model
	styles ui.Styles

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // text input model for the new title
	addErr string          // last add validation error

	width, height int
}

// Run starts the single-screen Bubble Tea demo against the given store.
func Run(store *state.Store) error {
	styles := ui.ForMode(store.Snapshot().UI.DarkMode)

	l := list.New(nil, itemDelegate{styles: styles}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title
	l.Styles.HelpStyle = styles.Help
	l.Styles.PaginationStyle = styles.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	// Extend help with the counter / screen bindings
	extra := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		key.NewBinding(key.WithKeys("+"), key.WithHelp("+/-", "counter")),
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	m := screenModel{
		store:  store,
		list:   l,
		styles: styles,
	}
	// set up text input for inline add
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New todo title..."
	m.ti.CharLimit = 200
	m.sync()

	if os.Getenv("STATEDEMO_DEBUG") != "" {
		f, err := tea.LogToFile("statedemo.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// sync rebuilds the list from a fresh snapshot: active items first
// (newest on top), then the completed ones.
func (m *screenModel) sync() {
	snap := m.store.Snapshot()

	li := make([]list.Item, 0, len(snap.Todos.Items)+len(snap.Todos.DoneItems))
	for _, t := range snap.Todos.Items {
		li = append(li, listItem{todo: t})
	}
	for _, t := range snap.Todos.DoneItems {
		li = append(li, listItem{todo: t})
	}
	idx := m.list.Index()
	m.list.SetItems(li)
	if idx >= len(li) {
		idx = len(li) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)

	dn := len(snap.Todos.DoneItems)
	total := len(li)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d   %s",
		m.styles.Title.Render("Todos"),
		m.styles.Success.Render("✔"), dn,
		m.styles.Pending.Render("•"), total-dn,
		m.styles.Accent.Render(ui.ProgressBar(dn, total, 16)),
	)
}

// setStyles re-applies the palette after a dark mode toggle.
func (m *screenModel) setStyles(s ui.Styles) {
	m.styles = s
	m.list.SetDelegate(itemDelegate{styles: s})
	m.list.Styles.Title = s.Title
	m.list.Styles.HelpStyle = s.Help
	m.list.Styles.PaginationStyle = s.Help
}

// selectedID returns the todo id under the cursor, or "".
func (m screenModel) selectedID() string {
	if it, ok := m.list.SelectedItem().(listItem); ok {
		return it.todo.ID
	}
	return ""
}

// Init, Update and View implement Bubble Tea's Model
func (m screenModel) Init() tea.Cmd { return nil }

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.store.Dispatch(state.AddTodo{Title: title})
				m.sync()
				m.list.Select(0)
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// keep our shortcuts out of the way while the list filter is typing
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if id := m.selectedID(); id != "" {
				m.store.Dispatch(state.ToggleTodo{ID: id})
				m.sync()
			}
			return m, nil
		case "d":
			if id := m.selectedID(); id != "" {
				m.store.Dispatch(state.RemoveTodo{ID: id})
				m.sync()
			}
			return m, nil
		case "x":
			m.store.Dispatch(state.ClearTodos{})
			m.sync()
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		case "+", "=":
			m.store.Dispatch(state.Increment{})
			return m, nil
		case "-", "_":
			m.store.Dispatch(state.Decrement{})
			return m, nil
		case "0":
			m.store.Dispatch(state.Reset{})
			return m, nil
		case ">":
			m.store.Dispatch(state.AddByAmount{Amount: 10})
			return m, nil
		case "<":
			m.store.Dispatch(state.AddByAmount{Amount: -10})
			return m, nil
		case "t":
			m.store.Dispatch(state.ToggleDarkMode{})
			m.setStyles(ui.ForMode(m.store.Snapshot().UI.DarkMode))
			m.sync()
			return m, nil
		case "b":
			m.store.Dispatch(state.DismissBanner{})
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m screenModel) View() string {
	snap := m.store.Snapshot()

	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	var top []string
	if snap.UI.ShowBanner {
		top = append(top, m.styles.Banner.Render(
			"Welcome to the state demo!  "+m.styles.Muted.Render("press b to dismiss")))
	}
	top = append(top, fmt.Sprintf("%s %d   %s",
		m.styles.Title.Render("Counter:"),
		snap.Counter.Value,
		m.styles.Muted.Render("+/- adjust · 0 reset · </> ±10"),
	))
	header := strings.Join(top, "\n")

	listHeight := h - 4 - strings.Count(header, "\n") - 1
	if m.adding {
		listHeight -= 3
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)

	content := header + "\n" + m.list.View()
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " — " + m.styles.Error.Render(m.addErr)
		}
		content += "\n" + m.styles.Banner.Render(title+"\n"+m.ti.View())
	}
	return m.styles.Panel.Render(content)
}
