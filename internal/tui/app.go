package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medi-vault/models"
)

// RootModel owns the pages and routes messages to the one on screen. It
// handles ctrl+c, NavigateTo and the about window itself.
type RootModel struct {
	pages  map[string]tea.Model
	active string

	buildInfo models.AppBuildInfo
	aboutOpen bool

	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, active: startPage, buildInfo: buildInfo}
}

func (r RootModel) page() tea.Model {
	return r.pages[r.active]
}

func (r RootModel) Init() tea.Cmd {
	if p := r.page(); p != nil {
		return p.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	}

	p := r.page()
	if p == nil {
		return r, nil
	}
	updated, cmd := p.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

// handleKey consumes global keys. While the about window is open every
// other key is swallowed.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "esc":
		if r.aboutOpen {
			r.aboutOpen = false
			return true, nil
		}
	case "v":
		// only on the lock screen, and not while a passcode is being typed
		if r.active == pageLock && !r.pageCapturesText() {
			r.aboutOpen = !r.aboutOpen
			return true, nil
		}
	}
	return r.aboutOpen, nil
}

// navigate switches pages. A payload is delivered to the new page in place
// of its Init.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.active = nav.Page
	r.aboutOpen = false

	if nav.Payload == nil {
		return r, next.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch p := r.page(); {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo)
	case p == nil:
		return renderPage("MEDIVAULT", "", "")
	default:
		return p.View()
	}
}

// textCapturer is implemented by pages with a focused text input; single
// letter hotkeys must reach them untouched.
type textCapturer interface {
	CapturesText() bool
}

func (r RootModel) pageCapturesText() bool {
	c, ok := r.page().(textCapturer)
	return ok && c.CapturesText()
}
