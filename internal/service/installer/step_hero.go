package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// HeroKeyStep collects the superheroapi.com access key
type HeroKeyStep struct {
	input textinput.Model
}

func NewHeroKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "10-digit access token"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &HeroKeyStep{
		input: ti,
	}
}

func (s *HeroKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *HeroKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Settings.HeroAccessKey = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *HeroKeyStep) View(state *InstallState) string {
	return "Enter your superheroapi.com Access Key:\n" +
		"(log in with Facebook at superheroapi.com to get one)\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
