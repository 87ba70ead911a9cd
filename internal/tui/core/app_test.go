package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/flowboard/internal/testutil/cli"
)

func TestApp_UpdateStoresModel(t *testing.T) {
	_, a := cli.SetupSeededCLITest(t)
	tuiApp := New(context.Background(), a)

	_, _ = tuiApp.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	_, _ = tuiApp.Update(tea.KeyPressMsg(tea.Key{Text: "l", Code: 'l'}))

	assert.Equal(t, 1, tuiApp.GetModel().UiState.SelectedColumn())
	assert.Equal(t, 160, tuiApp.GetModel().UiState.Width())
	assert.Contains(t, tuiApp.View().Content, "In Progress")
}
