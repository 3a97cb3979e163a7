package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/home"
	sessionscreen "github.com/abhisek/quizzer/internal/screens/session"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	// Starter builds sessions from quiz links.
	Starter sessionscreen.Starter

	// Link pre-fills the home screen's link input.
	Link string

	// AutoStart pushes a session for Link immediately.
	AutoStart bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Starter, opts.Link)
	m := AppModel{
		router:  router.New(homeScreen),
		initCmd: homeScreen.Init(),
	}
	if opts.AutoStart && opts.Link != "" {
		m.initCmd = tea.Batch(m.initCmd, m.router.Push(sessionscreen.New(opts.Starter, opts.Link)))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	frame := layout.Frame{Hints: m.footerHints()}
	if layout.TooSmall(m.width, m.height) {
		v.SetContent(frame.Render("", m.width, m.height))
		return v
	}

	active := m.router.Active()
	if active != nil {
		frame.Title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		frame.Status = sp.Status()
	}

	bodyWidth, bodyHeight := layout.BodySize(m.width, m.height)
	v.SetContent(frame.Render(m.router.View(bodyWidth, bodyHeight), m.width, m.height))
	return v
}

// footerHints returns the active screen's hints, or navigation defaults.
func (m AppModel) footerHints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	_, err := p.Run()
	m.router.CloseAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
