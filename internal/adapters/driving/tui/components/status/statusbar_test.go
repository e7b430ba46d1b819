package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateReady, bar.State())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_States(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetState(StateSearching)
	assert.Contains(t, bar.View(), "Searching...")

	bar.SetState(StateLoading)
	assert.Contains(t, bar.View(), "Loading page...")

	bar.SetState(StateError)
	bar.SetMessage("no credentials")
	assert.Contains(t, bar.View(), "Error: no credentials")

	bar.SetState(StateResults)
	bar.SetMessage("")
	bar.SetResultCount(7)
	assert.Contains(t, bar.View(), "7 results")
}

func TestBar_PageHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetState(StatePage)

	out := bar.View()
	assert.Contains(t, out, "bookmark")
	assert.Contains(t, out, "next link")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetResultCount(3)

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
}
