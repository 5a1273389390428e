package view

import (
	"sync"

	"ulascansenturk/weather-client/internal/display"
)

type State int

const (
	StateInput State = iota
	StateResult
)

func (s State) String() string {
	switch s {
	case StateResult:
		return "result"
	default:
		return "input"
	}
}

// Token identifies one dispatched request against a Page.
type Token uint64

// Snapshot is an immutable copy of a Page, safe to render.
type Snapshot struct {
	State   State
	Weather *display.Weather
	Error   string
	Notice  string
}

// FormVisible reports whether the input form is shown.
func (s Snapshot) FormVisible() bool {
	return s.State == StateInput
}

// Page is the view model of one browser tab: the input form, the result
// container and the info dialog. Writers are serialized; without the stale
// guard the last completed write wins regardless of request order.
type Page struct {
	mu         sync.Mutex
	state      State
	weather    *display.Weather
	errMsg     string
	notice     string
	seq        Token
	staleGuard bool
}

type Option func(*Page)

// WithStaleGuard drops completions whose token is older than the most recently
// issued one.
func WithStaleGuard(enabled bool) Option {
	return func(p *Page) {
		p.staleGuard = enabled
	}
}

func NewPage(opts ...Option) *Page {
	p := &Page{state: StateInput}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Begin issues the token for a new request.
func (p *Page) Begin() Token {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	return p.seq
}

// ShowResult installs a rendered forecast and hides the form. It returns false
// when the write was discarded as stale.
func (p *Page) ShowResult(token Token, weather *display.Weather) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stale(token) {
		return false
	}

	p.state = StateResult
	p.weather = weather
	p.errMsg = ""
	return true
}

// ShowError replaces the result container with a single error line. The form
// visibility is left as it was.
func (p *Page) ShowError(token Token, msg string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stale(token) {
		return false
	}

	p.weather = nil
	p.errMsg = msg
	return true
}

// Back clears the result container and shows the form again.
func (p *Page) Back() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StateInput
	p.weather = nil
	p.errMsg = ""
	if p.staleGuard {
		p.seq++
	}
}

func (p *Page) ShowNotice(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notice = msg
}

func (p *Page) DismissNotice() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notice = ""
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		State:   p.state,
		Weather: p.weather,
		Error:   p.errMsg,
		Notice:  p.notice,
	}
}

func (p *Page) stale(token Token) bool {
	return p.staleGuard && token != p.seq
}
