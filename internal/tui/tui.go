// Package tui is the terminal front of the profile editor. It renders the
// state of an [editor.Editor] and translates key presses into its
// transitions; all network calls run as bubbletea commands.
package tui

import (
	"context"

	"github.com/MKhiriev/go-profile-editor/internal/editor"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	editor    *editor.Editor
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(editor *editor.Editor, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		editor:    editor,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the editor full screen and blocks until the user quits or ctx
// is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newEditorModel(ctx, t.editor, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}
	if _, ok := finalModel.(editorModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
