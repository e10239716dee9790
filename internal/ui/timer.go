// Package ui holds the interactive surfaces: the stopwatch TUI and the
// lipgloss theme shared by the CLI output.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/diarselimi/crux/internal/timer"
)

// TermCues delivers cues as a terminal bell; vibration has no terminal
// equivalent and is dropped. The zero value writes to stdout.
type TermCues struct {
	W io.Writer
}

func (c TermCues) PlayCue(string) {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "\a")
}

func (TermCues) Vibrate(int) {}

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Mode   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Mode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset, k.Mode, k.Quit}}
}

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// TimerModel is the stopwatch screen.
type TimerModel struct {
	tm    *timer.Timer
	theme Theme
	help  help.Model
}

func NewTimerModel(tm *timer.Timer) TimerModel {
	return TimerModel{tm: tm, theme: DefaultTheme, help: help.New()}
}

func (m TimerModel) Init() tea.Cmd { return tick() }

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The timer resamples on its own; the tick only redraws.
		return m, tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			if m.tm.Running() {
				m.tm.Pause()
			} else {
				m.tm.Start()
			}
		case key.Matches(msg, keys.Reset):
			m.tm.Reset()
		case key.Matches(msg, keys.Mode):
			m.tm.CycleMode()
		case key.Matches(msg, keys.Quit):
			m.tm.Pause()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TimerModel) View() string {
	state := "paused"
	if m.tm.Running() {
		state = "running"
	}
	body := fmt.Sprintf(
		"%s\n\n%s\n\n%s %s\n%s %s\n\n%s",
		m.theme.Title.Render("Session timer"),
		m.theme.Clock.Render(timer.FormatElapsed(m.tm.Elapsed())),
		m.theme.Label.Render("mode"),
		m.theme.Value.Render(timer.ModeLabels[m.tm.Mode()]),
		m.theme.Label.Render("state"),
		m.theme.Value.Render(state),
		m.help.View(keys),
	)
	return m.theme.Border.Render(body) + "\n"
}

// RunTimer starts the stopwatch TUI and blocks until it exits.
func RunTimer(tm *timer.Timer) error {
	_, err := tea.NewProgram(NewTimerModel(tm)).Run()
	return err
}
