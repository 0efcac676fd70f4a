package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/config"
	"pupfinder/internal/domain"
	"pupfinder/internal/eventbus"
	"pupfinder/internal/logging"
	"pupfinder/internal/logic"
	"pupfinder/internal/ui/commands"
	"pupfinder/internal/ui/input"
	"pupfinder/internal/ui/input/modes"
	inputtypes "pupfinder/internal/ui/input/types"
	"pupfinder/internal/ui/services/events"
	"pupfinder/internal/ui/services/match"
	"pupfinder/internal/ui/services/navigation"
	"pupfinder/internal/ui/services/search"
	"pupfinder/internal/ui/services/selection"
	"pupfinder/internal/ui/services/session"
	"pupfinder/internal/ui/services/sorting"
	"pupfinder/internal/ui/state"
	"pupfinder/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        views.KeyMap
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Services
	uiBus     events.EventBus
	session   *session.Service
	sorting   *sorting.Service
	search    *search.Service
	favorites *selection.Service
	matcher   *match.Service
	nav       *navigation.Service

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client commands.Client) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState()
	appState.ShowImages = cfg.UISettings.ShowImages

	uiBus := events.NewBus()
	sortSvc := sorting.NewService(uiBus)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         views.DefaultKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		uiBus:        uiBus,
		session:      session.NewService(uiBus),
		sorting:      sortSvc,
		search:       search.NewService(uiBus, sortSvc, logic.NewMemoryDogStore()),
		favorites:    selection.NewService(uiBus),
		matcher:      match.NewService(uiBus),
		nav:          navigation.NewService(uiBus),
		renderer:     views.NewRenderer(cfg.UISettings.ShowImages),
		helpRenderer: NewHelpRenderer(),
		cmdExecutor:  commands.NewExecutor(client, cfg.HTTP.Timeout.Duration),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	// Prefill the login form with the last used credentials
	m.inputHandler.Form(inputtypes.ModeLogin).SetValues(cfg.Login.Name, cfg.Login.Email)

	m.session.OnEnter(func(name string) {
		m.state.InlineNotice = ""
		m.state.StatusMessage = "Welcome, " + name
	})
	m.session.OnExit(m.resetSearchView)
	m.subscribeDiagnostics()

	return m
}

// subscribeDiagnostics logs service events. Handlers run off the UI
// goroutine, so they never touch model state.
func (m *Model) subscribeDiagnostics() {
	m.uiBus.Subscribe(events.TypeOf(selection.FavoritesChangedEvent{}), func(e interface{}) {
		if ev, ok := e.(selection.FavoritesChangedEvent); ok {
			logging.Debug("favorites changed", "added", ev.Added, "removed", ev.Removed, "total", ev.Total)
		}
	})
	m.uiBus.Subscribe(events.TypeOf(sorting.SortKeyChangedEvent{}), func(e interface{}) {
		if ev, ok := e.(sorting.SortKeyChangedEvent); ok {
			logging.Info("sort changed", "from", ev.OldKey, "to", ev.NewKey)
		}
	})
	m.uiBus.Subscribe(events.TypeOf(search.StaleResultDiscardedEvent{}), func(e interface{}) {
		if ev, ok := e.(search.StaleResultDiscardedEvent); ok {
			logging.Debug("stale search result dropped", "seq", ev.Seq, "latest", ev.Latest)
		}
	})
}

// resetSearchView clears everything the search view owns. It runs on every
// LoggedIn -> LoggedOut transition.
func (m *Model) resetSearchView() {
	m.search.Reset()
	m.favorites.Clear()
	m.matcher.Reset()
	m.nav.SetCount(0)
	m.state.ResetSearchView()
	m.inputHandler.Reset()
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.inputHandler.Form(inputtypes.ModeLogin).FocusFirst())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetViewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:  m.state,
		Search: m.search,
		Nav:    m.nav,
		Match:  m.matcher,
	}
}

// changeMode switches input mode outside of key handling
func (m *Model) changeMode(mode inputtypes.Mode) {
	for _, action := range m.inputHandler.ChangeMode(mode, m.inputContext()) {
		m.processAction(action)
	}
}

// dismissNotice closes the popup and returns to the mode beneath it,
// unless the session changed in between
func (m *Model) dismissNotice() {
	m.state.DismissNotice()
	if m.inputHandler.CurrentMode() != inputtypes.ModeNotice {
		return
	}

	under := m.inputHandler.UnderlyingMode()
	switch {
	case !m.session.LoggedIn() && under != inputtypes.ModeLogin:
		m.inputHandler.PopMode(m.inputContext())
		m.changeMode(inputtypes.ModeLogin)
	case m.session.LoggedIn() && under == inputtypes.ModeLogin:
		m.inputHandler.PopMode(m.inputContext())
		m.changeMode(inputtypes.ModeNormal)
	default:
		for _, action := range m.inputHandler.PopMode(m.inputContext()) {
			m.processAction(action)
		}
	}
}

// showNotice routes a notice to the login form, a popup or the log
func (m *Model) showNotice(n *domain.Notice) {
	if n == nil {
		return
	}
	if n.Err != nil {
		m.publish(eventbus.ErrorEvent{Message: n.Text, Err: n.Err})
	}
	m.state.SetNotice(n)
	if n.Level == domain.NoticeBlocking {
		for _, action := range m.inputHandler.PushMode(inputtypes.ModeNotice, m.inputContext()) {
			m.processAction(action)
		}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.NextPageAction:
		if req, ok := m.search.NextPage(); ok {
			return m.cmdExecutor.ExecuteSearch(req)
		}

	case inputtypes.PrevPageAction:
		if req, ok := m.search.PrevPage(); ok {
			return m.cmdExecutor.ExecuteSearch(req)
		}

	case inputtypes.ToggleSortAction:
		req, ok := m.search.ToggleSort()
		m.state.StatusMessage = "Sorted by " + m.sorting.GetKeyString()
		if ok {
			return m.cmdExecutor.ExecuteSearch(req)
		}

	case inputtypes.SearchAction:
		return m.runSearch()

	case inputtypes.ClearFilterAction:
		m.state.Filter = domain.Filter{}
		m.inputHandler.Form(inputtypes.ModeFilter).Reset()
		return m.runSearch()

	case inputtypes.ToggleFavoriteAction:
		m.favorites.Toggle(a.ID)

	case inputtypes.GenerateMatchAction:
		req, notice := m.matcher.Generate(m.favorites.IDs())
		if notice != nil {
			m.showNotice(notice)
			return nil
		}
		return m.cmdExecutor.ExecuteMatch(req)

	case inputtypes.ShowDetailsAction:
		return m.showDetails(a)

	case inputtypes.SubmitFormAction:
		return m.submitForm(a)

	case inputtypes.CancelFormAction:
		// Put back what the filter bar shows
		m.inputHandler.Form(inputtypes.ModeFilter).SetValues(m.state.Filter.AgeMin, m.state.Filter.AgeMax, m.state.Filter.ZipCodes)

	case inputtypes.SelectBreedAction:
		m.state.Filter.Breed = a.Breed
		return m.runSearch()

	case inputtypes.UpdateBreedIndexAction:
		m.state.BreedIndex = a.Index

	case inputtypes.LogoutAction:
		if m.state.LoggingOut {
			return nil
		}
		m.state.LoggingOut = true
		return m.cmdExecutor.ExecuteLogout()

	case inputtypes.DismissNoticeAction:
		m.dismissNotice()

	case inputtypes.ToggleHelpAction:
		return m.fetchPager("help", m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// runSearch starts a page 1 search with the filter in the form
func (m *Model) runSearch() tea.Cmd {
	req := m.search.Search(m.state.Filter, 1)
	return m.cmdExecutor.ExecuteSearch(req)
}

func (m *Model) submitForm(a inputtypes.SubmitFormAction) tea.Cmd {
	switch a.Mode {
	case inputtypes.ModeLogin:
		if m.state.LoggingIn {
			return nil
		}
		creds := domain.Credentials{
			Name:  a.Values[modes.LoginFieldName],
			Email: strings.TrimSpace(a.Values[modes.LoginFieldEmail]),
		}
		m.state.InlineNotice = ""
		m.state.LoggingIn = true
		return m.cmdExecutor.ExecuteLogin(creds)

	case inputtypes.ModeFilter:
		m.state.Filter.AgeMin = a.Values[modes.FilterFieldAgeMin]
		m.state.Filter.AgeMax = a.Values[modes.FilterFieldAgeMax]
		m.state.Filter.ZipCodes = a.Values[modes.FilterFieldZipCodes]
		m.changeMode(inputtypes.ModeNormal)
		return m.runSearch()
	}
	return nil
}

func (m *Model) showDetails(a inputtypes.ShowDetailsAction) tea.Cmd {
	if a.Matched {
		dog := m.matcher.Matched()
		if dog == nil {
			return nil
		}
		return m.fetchPager("match", m.renderer.Dogs().RenderDetails(*dog, "Your match: "+dog.Name))
	}

	dog, ok := m.search.Dog(a.ID)
	if !ok {
		return nil
	}
	return m.fetchPager("dog", m.renderer.Dogs().RenderDetails(dog, dog.Name))
}

// fetchPager returns a command that shows content using ov pager
func (m *Model) fetchPager(what, content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return pagerMsg{what: what, err: errNoProgram} }
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.LoginDoneMsg:
		m.state.LoggingIn = false
		if notice := m.session.ApplyLogin(msg.Result); notice != nil {
			m.showNotice(notice)
			return m, nil
		}
		m.changeMode(inputtypes.ModeNormal)
		m.publish(eventbus.SessionChangedEvent{From: domain.LoggedOut, To: domain.LoggedIn, Name: msg.Result.Creds.Name})
		m.publish(eventbus.ConfigChangedEvent{LoginName: msg.Result.Creds.Name, LoginEmail: msg.Result.Creds.Email})
		return m, m.cmdExecutor.ExecuteBreeds()

	case commands.LogoutDoneMsg:
		m.state.LoggingOut = false
		wasLoggedIn := m.session.LoggedIn()
		notice := m.session.ApplyLogout(msg.Result)
		if wasLoggedIn {
			m.publish(eventbus.SessionChangedEvent{From: domain.LoggedIn, To: domain.LoggedOut})
		}
		m.showNotice(notice)
		return m, nil

	case commands.SearchDoneMsg:
		applied, notice := m.search.Apply(msg.Result)
		if applied {
			m.nav.SetCount(len(m.search.Dogs()))
			m.state.StatusMessage = ""
			m.publish(eventbus.SearchCompletedEvent{
				Page:       m.search.CurrentPage(),
				TotalPages: m.search.TotalPages(),
				Total:      m.search.Total(),
				Count:      len(m.search.Dogs()),
			})
			if req, ok := m.search.Reload(); ok {
				return m, m.cmdExecutor.ExecuteSearch(req)
			}
		}
		m.showNotice(notice)
		return m, nil

	case commands.MatchDoneMsg:
		applied, notice := m.matcher.Apply(msg.Result)
		if applied {
			m.publish(eventbus.MatchFoundEvent{Dog: *m.matcher.Matched()})
		}
		m.showNotice(notice)
		return m, nil

	case commands.BreedsDoneMsg:
		if msg.Err != nil {
			// Picker still works with "any breed" only
			logging.Warn("failed to load breeds", "err", msg.Err)
			return m, nil
		}
		if !m.session.LoggedIn() {
			return m, nil
		}
		m.state.Breeds = msg.Breeds
		m.publish(eventbus.BreedsLoadedEvent{Count: len(msg.Breeds)})
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		logging.Debug("domain event", "type", msg.Event.Type())
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			logging.Warn("pager failed", "what", msg.what, "err", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other messages go to the active form
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	start, end := m.nav.VisibleRange()

	favSet := make(map[string]bool, m.favorites.Count())
	var favs []views.FavoriteEntry
	for _, id := range m.favorites.IDs() {
		favSet[id] = true
		label := id
		if dog, ok := m.search.Dog(id); ok {
			label = dog.Name
		}
		favs = append(favs, views.FavoriteEntry{ID: id, Label: label})
	}

	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Mode:          m.inputHandler.CurrentMode(),
		LoginForm:     m.inputHandler.Form(inputtypes.ModeLogin),
		InlineNotice:  m.state.InlineNotice,
		LoggingIn:     m.state.LoggingIn,
		UserName:      m.session.Name(),
		Filter:        m.state.Filter,
		FilterForm:    m.inputHandler.Form(inputtypes.ModeFilter),
		SortLabel:     m.sorting.GetKeyString(),
		Dogs:          m.search.Dogs(),
		FavoriteSet:   favSet,
		Favorites:     favs,
		Matched:       m.matcher.Matched(),
		Cursor:        m.nav.GetCursor(),
		VisibleStart:  start,
		VisibleEnd:    end,
		CurrentPage:   m.search.CurrentPage(),
		TotalPages:    m.search.TotalPages(),
		Total:         m.search.Total(),
		HasPrev:       m.search.HasPrev(),
		HasNext:       m.search.HasNext(),
		Searched:      m.search.Searched(),
		Loading:       m.search.Loading(),
		MatchLoading:  m.matcher.Loading(),
		Spinner:       m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		Breeds:        m.state.Breeds,
		BreedIndex:    m.state.BreedIndex,
		Notice:        m.state.Notice,
		HelpModel:     m.help,
		Keys:          m.keys,
	}
}
