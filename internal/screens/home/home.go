package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	sessionscreen "github.com/abhisek/quizzer/internal/screens/session"
	sess "github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

const (
	menuStart = iota
	menuQuit
)

// HomeScreen collects a quiz link and starts sessions from it.
type HomeScreen struct {
	starter sessionscreen.Starter
	input   components.TextInput
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen, pre-filled with link if non-empty.
func New(starter sessionscreen.Starter, link string) *HomeScreen {
	h := &HomeScreen{
		starter: starter,
		input:   components.NewTextInput("https://example.edu/quiz/CS101?weeks=1-2&numQ=10", 512),
	}
	if link != "" {
		h.input.SetValue(link)
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Hint: "Enter", Action: h.start},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "enter":
			var cmd tea.Cmd
			h.menu, cmd = h.menu.Update(msg)
			return h, cmd
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

// start validates the link locally and pushes a session screen.
func (h *HomeScreen) start() tea.Cmd {
	link := h.input.Value()
	if link == "" {
		h.input.SetError("enter a quiz link")
		return nil
	}
	if _, err := sess.ParseLink(link); err != nil {
		h.input.SetError(err.Error())
		return nil
	}

	next := sessionscreen.New(h.starter, link)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	compact := layout.Compact(width, height)

	sections := []string{
		renderTitle(cw, compact),
		renderLinkBox(h.input.View(), cw),
		renderMenu(h.menu, cw),
	}
	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
