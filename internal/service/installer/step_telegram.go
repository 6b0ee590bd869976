package installer

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TelegramTokenStep collects the Telegram bot token
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{
		input: ti,
	}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Settings.TelegramToken = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// GroupStep collects the group chat the bot is limited to
type GroupStep struct {
	input  textinput.Model
	errMsg string
}

func NewGroupStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "-1001234567890"
	ti.EchoMode = textinput.EchoNormal

	return &GroupStep{
		input: ti,
	}
}

func (s *GroupStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *GroupStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			raw := s.input.Value()
			if raw == "" {
				return nil, nil
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				s.errMsg = "That is not a numeric chat ID."
				return s, cmd
			}
			state.Settings.GroupID = id
			return nil, nil
		}
	}
	return s, cmd
}

func (s *GroupStep) View(state *InstallState) string {
	view := "Enter the Group Chat ID to serve (leave empty to answer everywhere):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
	if s.errMsg != "" {
		view += "\n" + errorStyle.Render(s.errMsg) + "\n"
	}
	return view
}

// WelcomeChatStep collects the chat where member-join greetings go
type WelcomeChatStep struct {
	input  textinput.Model
	errMsg string
}

func NewWelcomeChatStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "-1001234567890"
	ti.EchoMode = textinput.EchoNormal

	return &WelcomeChatStep{
		input: ti,
	}
}

func (s *WelcomeChatStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *WelcomeChatStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			raw := s.input.Value()
			if raw == "" {
				return nil, nil
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				s.errMsg = "That is not a numeric chat ID."
				return s, cmd
			}
			state.Settings.WelcomeChatID = id
			return nil, nil
		}
	}
	return s, cmd
}

func (s *WelcomeChatStep) View(state *InstallState) string {
	view := "Enter the Chat ID for welcome messages (leave empty to greet in place):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
	if s.errMsg != "" {
		view += "\n" + errorStyle.Render(s.errMsg) + "\n"
	}
	return view
}
