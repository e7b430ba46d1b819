package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSearchInput_Typing(t *testing.T) {
	in := NewSearchInput(nil)

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("deploy")})
	assert.Equal(t, "deploy", in.Value())

	in.SetValue("runbook")
	assert.Equal(t, "runbook", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestSearchInput_FocusState(t *testing.T) {
	in := NewSearchInput(nil)
	assert.True(t, in.Focused())

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestSearchInput_WidthFloor(t *testing.T) {
	in := NewSearchInput(nil)

	in.SetWidth(12)
	assert.Equal(t, 12, in.Width())
}
