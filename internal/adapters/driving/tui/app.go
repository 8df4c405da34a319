package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// State identifies the search interface state. Transitions:
// StateClosed -> StateOpenEmpty on the open shortcut; typing moves to
// StateQuerying; a settled query scores into StateResults (or back to
// StateOpenEmpty when under the minimum length); Escape returns to
// StateClosed from any open state, clearing query and results.
type State int

const (
	StateClosed State = iota
	StateOpenEmpty
	StateQuerying
	StateResults
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenEmpty:
		return "open-empty"
	case StateQuerying:
		return "open-querying"
	case StateResults:
		return "open-results"
	default:
		return "unknown"
	}
}

// DefaultDebounce is how long input must stay quiet before scoring.
const DefaultDebounce = 200 * time.Millisecond

// minQueryLen is the minimum trimmed query length that triggers scoring.
const minQueryLen = 2

// App is the interactive search application following the Elm
// architecture. It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar

	// state is the current search interface state.
	state State

	// seq identifies the latest keystroke; debounce ticks carrying an
	// older seq are ignored, coalescing rapid input into one scoring
	// pass per quiescence window.
	seq int

	// debounce is the input quiescence window.
	debounce time.Duration

	// listFocused is true while the cursor is on the result list
	// rather than the query input.
	listFocused bool

	// chosenURL holds the URL of the result activated with Enter.
	chosenURL string

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewQueryInput(s),
		list:      list.NewResultList(s),
		statusbar: status.NewBar(s, km),
		state:     StateClosed,
		debounce:  DefaultDebounce,
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithDebounce overrides the input quiescence window.
func (a *App) WithDebounce(d time.Duration) *App {
	if d > 0 {
		a.debounce = d
	}
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.DebounceElapsed:
		return a, a.handleDebounce(msg)

	case messages.SearchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case messages.ResultChosen:
		a.chosenURL = msg.URL
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.state == StateClosed {
		switch {
		case keymap.Matches(msg.String(), a.keymap.Open):
			return a, a.open()
		case msg.String() == "q":
			return a, tea.Quit
		}
		return a, nil
	}

	// Open states from here on.
	if keymap.Matches(msg.String(), a.keymap.Close) {
		a.close()
		return a, nil
	}

	if a.listFocused {
		return a.handleListKey(msg)
	}

	return a.handleInputKey(msg)
}

// handleInputKey processes a key while the query input has focus.
func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Down moves the cursor onto the results.
	if keymap.Matches(msg.String(), a.keymap.Down) && a.state == StateResults && !a.list.IsEmpty() {
		a.listFocused = true
		a.input.Blur()
		a.list.SetSelected(0)
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() == before {
		return a, cmd
	}

	// Every keystroke re-arms the debounce timer.
	a.seq++
	a.state = StateQuerying
	seq := a.seq
	tick := tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return messages.DebounceElapsed{Seq: seq}
	})
	return a, tea.Batch(cmd, tick)
}

// handleListKey processes a key while the result list has focus.
func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), a.keymap.Up):
		if !a.list.MoveUp() {
			// Moving up from the first result refocuses the input.
			a.listFocused = false
			return a, a.input.Focus()
		}
		return a, nil

	case keymap.Matches(msg.String(), a.keymap.Down):
		a.list.MoveDown()
		return a, nil

	case keymap.Matches(msg.String(), a.keymap.Select):
		result := a.list.SelectedResult()
		if result == nil {
			return a, nil
		}
		url := result.Entry.URL
		return a, func() tea.Msg {
			return messages.ResultChosen{URL: url}
		}

	case msg.String() == "q":
		return a, tea.Quit
	}

	return a, nil
}

// handleDebounce evaluates a settled query.
func (a *App) handleDebounce(msg messages.DebounceElapsed) tea.Cmd {
	if msg.Seq != a.seq || a.state == StateClosed {
		return nil
	}

	query := strings.TrimSpace(a.input.Value())
	if utf8.RuneCountInString(query) < minQueryLen {
		a.state = StateOpenEmpty
		a.list.SetResults(nil)
		a.statusbar.Clear()
		return nil
	}

	a.statusbar.SetState(status.StateSearching)
	return a.searchCmd(query)
}

// searchCmd scores a query asynchronously.
func (a *App) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, query)
		return messages.SearchCompleted{Query: query, Results: results, Err: err}
	}
}

// handleSearchCompleted applies scored results to the model.
func (a *App) handleSearchCompleted(msg messages.SearchCompleted) {
	if a.state == StateClosed {
		return
	}
	// Results for a superseded query are discarded.
	if msg.Query != strings.TrimSpace(a.input.Value()) {
		return
	}

	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		a.state = StateOpenEmpty
		return
	}

	a.err = nil
	a.list.SetTerms(strings.Fields(strings.ToLower(msg.Query)))
	a.list.SetResults(msg.Results)
	a.listFocused = false
	a.state = StateResults
	a.statusbar.SetState(status.StateResults)
	a.statusbar.SetResultCount(len(msg.Results))
}

// open activates the search box.
func (a *App) open() tea.Cmd {
	a.state = StateOpenEmpty
	a.listFocused = false
	a.statusbar.Clear()
	return tea.Batch(a.input.Focus(), a.input.Init())
}

// close dismisses the search box, clearing query and results.
func (a *App) close() {
	a.state = StateClosed
	a.seq++
	a.listFocused = false
	a.input.SetValue("")
	a.input.Blur()
	a.list.SetTerms(nil)
	a.list.SetResults(nil)
	a.statusbar.Clear()
	a.err = nil
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, a.styles.Title.Render("minutes"), "")

	if a.state == StateClosed {
		hint := a.styles.Muted.Render("Press / to search the meeting archive.")
		sections = append(sections, hint, "")
	} else {
		sections = append(sections, a.input.View(), "")

		if a.err != nil {
			sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
		}

		if a.state == StateResults {
			sections = append(sections, a.list.View())
		}
	}

	sections = append(sections, "", a.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.input.SetWidth(width)
	a.list.SetDimensions(width, height-8)
	a.statusbar.SetWidth(width)
}

// State returns the current search interface state.
func (a *App) State() State {
	return a.state
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.list.Results()
}

// SelectedIndex returns the index of the highlighted result.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// InputFocused reports whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.state != StateClosed && !a.listFocused
}

// ChosenURL returns the URL of the result activated with Enter, or
// empty when the session ended without a selection.
func (a *App) ChosenURL() string {
	return a.chosenURL
}

// Err returns the last error, if any.
func (a *App) Err() error {
	return a.err
}
