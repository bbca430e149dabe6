package tui

import (
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

func newInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 48
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

func newPasswordInput(placeholder string) textinput.Model {
	input := newInput(placeholder, 128)
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	return input
}

// authForm is the login/signup form shown while logged out.
type authForm struct {
	signup bool
	inputs [3]textinput.Model
	field  int
	notice application.Notice
}

func newAuthForm() authForm {
	return authForm{
		inputs: [3]textinput.Model{
			fieldName:     newInput("Your name", 80),
			fieldEmail:    newInput("you@example.com", 254),
			fieldPassword: newPasswordInput("Password"),
		},
	}
}

func (a *authForm) fields() []int {
	if a.signup {
		return []int{fieldName, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (a *authForm) current() int {
	return a.fields()[a.field]
}

func (a *authForm) focus() tea.Cmd {
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	return a.inputs[a.current()].Focus()
}

func (a *authForm) move(delta int) tea.Cmd {
	n := len(a.fields())
	a.field = (a.field + delta + n) % n
	return a.focus()
}

func (a *authForm) last() bool {
	return a.field == len(a.fields())-1
}

func (a *authForm) toggle() tea.Cmd {
	a.signup = !a.signup
	a.field = 0
	a.notice = application.Notice{}
	return a.focus()
}

func (a *authForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.inputs[a.current()], cmd = a.inputs[a.current()].Update(msg)
	return cmd
}

func (a *authForm) value(field int) string {
	return a.inputs[field].Value()
}

// reset clears the form after a successful login but keeps the email.
func (a *authForm) reset() {
	a.inputs[fieldName].Reset()
	a.inputs[fieldPassword].Reset()
	a.field = 0
	a.notice = application.Notice{}
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
}
