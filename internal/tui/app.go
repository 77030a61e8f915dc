package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/search"
	"github.com/nikbrunner/rl/internal/tui/layout"
	"github.com/pkg/browser"
)

const defaultTimeout = 10 * time.Second

// Service is the set of reading list operations the popup triggers.
type Service interface {
	FolderName() string
	Load(ctx context.Context) ([]model.Bookmark, error)
	SaveCurrentTab(ctx context.Context) (model.Bookmark, error)
	Remove(ctx context.Context, id string) error
	MarkVisited(ctx context.Context, id string, at time.Time) error
}

// App is the bubbletea model of the reading list popup.
type App struct {
	service      Service
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	timeout      time.Duration
	now          func() time.Time
	openURL      func(string) error
	copyURL      func(string) error

	state  readlater.State
	rows   []readlater.Row
	cursor int

	filter    textinput.Model
	filtering bool

	spinner  spinner.Model
	spinning bool
	status   string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Service      Service
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Timeout      time.Duration        // per operation, defaults to 10s
	Now          func() time.Time     // optional, defaults to time.Now
	OpenURL      func(string) error   // optional, defaults to the system browser
	CopyURL      func(string) error   // optional, defaults to the system clipboard
}

// NewApp creates a new App with the given parameters. The first load is
// issued by Init.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	openURL := params.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}

	copyURL := params.CopyURL
	if copyURL == nil {
		copyURL = clipboard.WriteAll
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter articles..."
	filter.CharLimit = layoutCfg.Input.FilterCharLimit
	filter.Width = layoutCfg.Input.FilterWidth
	filter.Cursor.SetMode(cursor.CursorStatic)

	app := App{
		service:      params.Service,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		timeout:      timeout,
		now:          now,
		openURL:      openURL,
		copyURL:      copyURL,
		state:        readlater.NewState(),
		filter:       filter,
		spinner:      spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		width:        80,
		height:       24,
	}

	app.state, _ = app.state.BeginLoad()
	app.spinning = true
	return app
}

// WithDimensions returns a copy of the app with the given window size.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the visible list rows.
func (a App) Rows() []readlater.Row {
	return a.rows
}

// State returns the current view state.
func (a App) State() readlater.State {
	return a.state
}

// Status returns the last status line message.
func (a App) Status() string {
	return a.status
}

// Filtering reports whether the filter input has focus.
func (a App) Filtering() bool {
	return a.filtering
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(a.state.Generation()), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.state.Loading {
			a.spinning = false
			return a, nil
		}
		a.spinning = true
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case loadedMsg:
		var applied bool
		if msg.err != nil {
			a.state, applied = a.state.SetLoadError(msg.gen, msg.err)
		} else {
			a.state, applied = a.state.SetRecords(msg.gen, msg.bookmarks)
		}
		if applied {
			a.refreshRows()
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.state = a.state.SetError(msg.err)
			a.status = ""
			a.refreshRows()
			return a, nil
		}
		a.status = "Saved " + msg.bookmark.Title
		return a.reload()

	case removedMsg:
		if msg.err != nil {
			a.state = a.state.SetError(msg.err)
			a.status = ""
			a.refreshRows()
			return a, nil
		}
		a.status = "Removed " + msg.title
		return a.reload()

	case openedMsg:
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
			return a, nil
		}
		a.status = "Opened " + msg.url
		if msg.visited {
			a.state = a.state.MarkVisited(msg.id, msg.at)
			a.refreshRows()
		}
		return a, nil

	case actionMsg:
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
		} else {
			a.status = msg.status
		}
		return a, nil

	case tea.KeyMsg:
		if a.filtering {
			return a.handleFilterKey(msg)
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Reload):
		a.status = ""
		return a.reload()

	case key.Matches(msg, a.keys.Save):
		a.status = "Saving..."
		return a, a.saveCmd()

	case key.Matches(msg, a.keys.Clear):
		if a.filter.Value() != "" {
			a.filter.Reset()
			a.cursor = 0
			a.refreshRows()
		}

	case key.Matches(msg, a.keys.Filter):
		if a.state.Loading || a.state.Err != nil {
			return a, nil
		}
		a.filtering = true
		return a, a.filter.Focus()

	case key.Matches(msg, a.keys.Down):
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	case key.Matches(msg, a.keys.Toggle):
		if row, ok := a.selectedRow(); ok {
			a.toggleDay(row.Label)
		}

	case key.Matches(msg, a.keys.Collapse):
		if row, ok := a.selectedRow(); ok && a.state.Expansion.IsExpanded(row.Label) {
			a.toggleDay(row.Label)
		}

	case key.Matches(msg, a.keys.Expand):
		if row, ok := a.selectedRow(); ok && row.IsDay() && !a.state.Expansion.IsExpanded(row.Label) {
			a.toggleDay(row.Label)
		}

	case key.Matches(msg, a.keys.Open):
		row, ok := a.selectedRow()
		if !ok {
			return a, nil
		}
		if row.IsDay() {
			a.toggleDay(row.Label)
			return a, nil
		}
		return a, a.openCmd(*row.Bookmark)

	case key.Matches(msg, a.keys.YankURL):
		if row, ok := a.selectedRow(); ok && !row.IsDay() {
			return a, a.yankCmd(*row.Bookmark)
		}

	case key.Matches(msg, a.keys.Delete):
		if row, ok := a.selectedRow(); ok && !row.IsDay() {
			a.status = "Removing..."
			return a, a.removeCmd(*row.Bookmark)
		}
	}

	return a, nil
}

func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.filter.Reset()
		a.filter.Blur()
		a.filtering = false
		a.cursor = 0
		a.refreshRows()
		return a, nil

	case tea.KeyEnter:
		a.filter.Blur()
		a.filtering = false
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.cursor = 0
	a.refreshRows()
	return a, cmd
}

// reload starts a new load generation. Results of loads still in flight are
// dropped when they arrive.
func (a App) reload() (App, tea.Cmd) {
	var gen uint64
	a.state, gen = a.state.BeginLoad()
	a.refreshRows()

	cmds := []tea.Cmd{a.loadCmd(gen)}
	if !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

// toggleDay flips a day and moves the cursor onto its header, which keeps
// the cursor valid when the articles below it disappear.
func (a *App) toggleDay(label string) {
	a.state = a.state.Toggle(label)
	a.refreshRows()
	for i, row := range a.rows {
		if row.IsDay() && row.Label == label {
			a.cursor = i
			return
		}
	}
}

// refreshRows rebuilds the rows from the loaded bookmarks, the filter and
// the expansion state.
func (a *App) refreshRows() {
	if a.state.Loading || a.state.Err != nil {
		a.rows = nil
		return
	}

	query := a.filter.Value()
	bookmarks := search.Filter(a.state.Bookmarks, query)
	buckets := readlater.Group(bookmarks, a.now())
	a.rows = readlater.Rows(buckets, a.state.Expansion, query != "")

	if a.cursor >= len(a.rows) {
		a.cursor = max(len(a.rows)-1, 0)
	}
}

func (a App) selectedRow() (readlater.Row, bool) {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return readlater.Row{}, false
	}
	return a.rows[a.cursor], true
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
