package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/keymap"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/ui/albumart"
	"github.com/llehouerou/onestop/internal/ui/catalogview"
	"github.com/llehouerou/onestop/internal/ui/playerbar"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// Title is shown in the header bar.
const Title = "onestop"

// Model is the root application model.
type Model struct {
	Controller  *playback.Controller
	Source      CatalogSource
	Keys        *keymap.Resolver
	Catalog     catalogview.Model
	Help        help.Model
	Spinner     spinner.Model
	DisplayMode playerbar.DisplayMode
	Art         *albumart.Renderer
	ErrorMsg    string
	Width       int
	Height      int

	ctx         context.Context
	playbackSub *playback.Subscription
	state       playback.State
	spinning    bool
	fetching    bool // catalog request in flight
	coverURL    string
	coverSeq    string
}

// Option configures the application model.
type Option func(*Model)

// WithDisplayMode sets the initial transport bar mode.
func WithDisplayMode(mode playerbar.DisplayMode) Option {
	return func(m *Model) {
		m.DisplayMode = mode
	}
}

// WithAlbumArt enables cover art in the expanded transport bar.
func WithAlbumArt(r *albumart.Renderer) Option {
	return func(m *Model) {
		m.Art = r
	}
}

// WithContext sets the context used by network commands.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// New creates the application model. The controller must not have been
// closed; the model subscribes to its events.
func New(ctrl *playback.Controller, src CatalogSource, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.T().S().Playing

	h := help.New()
	h.ShortSeparator = " · "

	m := Model{
		Controller:  ctrl,
		Source:      src,
		Keys:        keymap.NewResolver(keymap.All),
		Catalog:     catalogview.New(),
		Help:        h,
		Spinner:     sp,
		DisplayMode: playerbar.ModeCompact,
		ctx:         context.Background(),
		playbackSub: ctrl.Subscribe(),
		fetching:    true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.state = ctrl.Snapshot()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchCatalogCmd(m.ctx, m.Source),
		m.WatchServiceEvents(),
		WatchStderr(),
		m.Spinner.Tick,
	)
}

// State returns the last playback snapshot seen by the UI.
func (m Model) State() playback.State {
	return m.state
}

// refresh takes a new controller snapshot and syncs the views with it.
func (m *Model) refresh() {
	m.state = m.Controller.Snapshot()
	m.Catalog.SetCurrent(m.state.CurrentIndex, m.state.IsPlaying)
	m.layout()
}

// busy reports whether a spinner should be animating.
func (m Model) busy() bool {
	return m.fetching || m.state.IsLoading()
}

// startSpinner re-arms the spinner tick if it stopped.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.Spinner.Tick
}
