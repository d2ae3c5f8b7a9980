package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-profile-editor/internal/editor"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/internal/mock"
	"github.com/MKhiriev/go-profile-editor/internal/service"
	"github.com/MKhiriev/go-profile-editor/internal/session"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "6562c186a4a586c6e19a4eef"

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestModel(t *testing.T, profile models.Profile, platforms []models.Platform) (editorModel, *mock.MockClientProfileService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockClientProfileService(ctrl)

	identity, err := session.NewStaticProvider(testUserID)
	require.NoError(t, err)
	ed := editor.New(profiles, identity, logger.Nop())

	profiles.EXPECT().GetProfile(gomock.Any(), testUserID).Return(profile, nil)
	profiles.EXPECT().GetPlatforms(gomock.Any(), testUserID).Return(platforms, nil)

	m := newEditorModel(context.Background(), ed, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"))
	m = step(t, m, m.cmdLoad()())
	require.False(t, m.busy)
	return m, profiles
}

// step feeds msg to the model and drops the returned command. Typing
// returns cursor blink commands that sleep, so they are never run here.
func step(t *testing.T, m editorModel, msg tea.Msg) editorModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(editorModel)
}

// pressAndRun presses k and feeds the editor results of the returned
// command back into the model.
func pressAndRun(t *testing.T, m editorModel, k tea.KeyType) editorModel {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	m = updated.(editorModel)
	require.NotNil(t, cmd)
	return runResults(t, m, cmd)
}

func runResults(t *testing.T, m editorModel, cmd tea.Cmd) editorModel {
	t.Helper()
	switch msg := cmd().(type) {
	case loadedMsg, savedMsg, uploadedMsg:
		updated, _ := m.Update(msg)
		return updated.(editorModel)
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				m = runResults(t, m, c)
			}
		}
	}
	return m
}

func press(t *testing.T, m editorModel, k tea.KeyType) editorModel {
	t.Helper()
	return step(t, m, tea.KeyMsg{Type: k})
}

func typeText(t *testing.T, m editorModel, s string) editorModel {
	t.Helper()
	for _, r := range s {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// ─────────────────────────────────────────────
// Load
// ─────────────────────────────────────────────

func TestEditorModel_LoadFillsInputs(t *testing.T) {
	m, _ := newTestModel(t,
		models.Profile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", ProfilePicture: "/pictures/a.png"},
		[]models.Platform{{Name: "Github", Value: "ada"}},
	)

	assert.Equal(t, "ada@example.com", m.fields[0].Value())
	assert.Equal(t, "Ada", m.fields[1].Value())
	assert.Equal(t, "Lovelace", m.fields[2].Value())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "Github", m.rows[0].name.Value())
	assert.Equal(t, "ada", m.rows[0].value.Value())
	assert.Equal(t, "/pictures/a.png", m.picture)
	assert.Contains(t, m.View(), "Lovelace")
}

func TestEditorModel_LoadFailureShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockClientProfileService(ctrl)
	identity, err := session.NewStaticProvider(testUserID)
	require.NoError(t, err)
	ed := editor.New(profiles, identity, logger.Nop())

	profiles.EXPECT().GetProfile(gomock.Any(), testUserID).Return(models.Profile{}, service.ErrUserNotFound)
	profiles.EXPECT().GetPlatforms(gomock.Any(), testUserID).Return([]models.Platform{}, nil)

	m := newEditorModel(context.Background(), ed, models.AppBuildInfo{})
	m = step(t, m, m.cmdLoad()())

	assert.Contains(t, m.errorMessage, "Error: ")
	assert.Contains(t, m.View(), "user not found")
}

// ─────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────

func TestEditorModel_TypingUpdatesEditor(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "Ada")

	assert.Equal(t, "Ada", m.editor.Snapshot().Profile.FirstName)
}

func TestEditorModel_AddCycleAndDeletePlatform(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	m = press(t, m, tea.KeyCtrlA)
	require.Len(t, m.rows, 1)
	row, isValue, ok := m.focusedRow()
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.False(t, isValue)

	m = press(t, m, tea.KeyCtrlF)
	assert.Equal(t, editor.PlatformOptions[0], m.rows[0].name.Value())
	assert.Equal(t, editor.PlatformOptions[0], m.editor.Snapshot().Platforms[0].Name)

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "+1 555")
	assert.Equal(t, "+1 555", m.editor.Snapshot().Platforms[0].Value)

	m = press(t, m, tea.KeyCtrlD)
	assert.Empty(t, m.rows)
	assert.Empty(t, m.editor.Snapshot().Platforms)
}

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestEditorModel_SaveSendsFilteredRows(t *testing.T) {
	m, profiles := newTestModel(t, models.Profile{Email: "ada@example.com"}, []models.Platform{
		{Name: "Linkedin", Value: "a"},
		{Name: "", Value: ""},
	})

	profiles.EXPECT().
		SaveProfile(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.ProfileSaveRequest) error {
			assert.Equal(t, []models.Platform{{Name: "Linkedin", Value: "a"}}, req.Platforms)
			return nil
		})

	m = pressAndRun(t, m, tea.KeyCtrlS)

	assert.False(t, m.busy)
	assert.Equal(t, "Profile saved", m.status)
	assert.Len(t, m.rows, 1)
}

func TestEditorModel_SaveDuplicatesShowsMessage(t *testing.T) {
	// No SaveProfile expectation: gomock fails the test on any request.
	m, _ := newTestModel(t, models.Profile{}, []models.Platform{
		{Name: "Linkedin", Value: "a"},
		{Name: "Linkedin", Value: "b"},
	})

	m = pressAndRun(t, m, tea.KeyCtrlS)

	assert.Equal(t, editor.MsgDuplicatePlatforms, m.errorMessage)
	assert.Contains(t, m.View(), editor.MsgDuplicatePlatforms)

	m = press(t, m, tea.KeyEsc)
	assert.Empty(t, m.errorMessage)
}

func TestEditorModel_KeysIgnoredWhileBusy(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)
	m.busy = true

	m = press(t, m, tea.KeyCtrlA)

	assert.Empty(t, m.rows)
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func TestEditorModel_UploadPrompt(t *testing.T) {
	m, profiles := newTestModel(t, models.Profile{}, nil)
	profiles.EXPECT().UploadPicture(gomock.Any(), testUserID, "/tmp/me.png").Return(nil)

	m = press(t, m, tea.KeyCtrlU)
	require.True(t, m.choosingPicture)
	assert.Contains(t, m.View(), "Upload picture")

	m = typeText(t, m, "/tmp/me.png")
	m = pressAndRun(t, m, tea.KeyEnter)

	assert.False(t, m.choosingPicture)
	assert.Equal(t, "/tmp/me.png", m.picture)
	assert.Equal(t, "Picture uploaded", m.status)
}

func TestEditorModel_UploadPromptCancel(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	m = press(t, m, tea.KeyCtrlU)
	m = typeText(t, m, "/tmp/me.png")
	m = press(t, m, tea.KeyEsc)

	assert.False(t, m.choosingPicture)
	assert.False(t, m.busy)
	assert.Empty(t, m.picture)
}

func TestEditorModel_UploadFailureShowsError(t *testing.T) {
	m, profiles := newTestModel(t, models.Profile{}, nil)
	profiles.EXPECT().UploadPicture(gomock.Any(), testUserID, "missing.png").Return(service.ErrOpeningPicture)

	m = press(t, m, tea.KeyCtrlU)
	m = typeText(t, m, "missing.png")
	m = pressAndRun(t, m, tea.KeyEnter)

	assert.Contains(t, m.errorMessage, "cannot open picture file")
	assert.Empty(t, m.status)
}

// ─────────────────────────────────────────────
// Overlays and status
// ─────────────────────────────────────────────

func TestEditorModel_BuildInfoOverlay(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	m = press(t, m, tea.KeyF1)
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	m = press(t, m, tea.KeyEsc)
	assert.False(t, m.showBuildInfo)
}

func TestEditorModel_StatusMessages(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	updated, cmd := m.Update(copiedMsg{})
	m = updated.(editorModel)
	assert.Equal(t, "Picture reference copied", m.status)
	assert.NotNil(t, cmd)

	updated, _ = m.Update(clearStatusMsg{})
	m = updated.(editorModel)
	assert.Empty(t, m.status)
}

func TestEditorModel_CopyWithoutPictureDoesNothing(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Nil(t, cmd)
}

func TestEditorModel_CopyUsesServerReference(t *testing.T) {
	m, profiles := newTestModel(t, models.Profile{ProfilePicture: "/pictures/old.png"}, nil)

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	profiles.EXPECT().GetProfilePicture(gomock.Any(), testUserID).Return("https://cdn.example.com/new.png", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, copiedMsg{reference: "https://cdn.example.com/new.png"}, msg)
	assert.Equal(t, "https://cdn.example.com/new.png", copied)
}

func TestEditorModel_CopyFetchFailure(t *testing.T) {
	m, profiles := newTestModel(t, models.Profile{ProfilePicture: "/pictures/old.png"}, nil)
	writeClipboard = func(string) error {
		t.Fatal("clipboard must not be written")
		return nil
	}
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	profiles.EXPECT().GetProfilePicture(gomock.Any(), testUserID).Return("", service.ErrServerFailure)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	m = step(t, m, cmd())

	assert.Contains(t, m.status, "Copy failed")
	assert.Contains(t, m.errorMessage, "cannot fetch picture reference")
}

func TestEditorModel_QuitAlwaysWorks(t *testing.T) {
	m, _ := newTestModel(t, models.Profile{}, nil)
	m.busy = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ─────────────────────────────────────────────
// Helpers of the view
// ─────────────────────────────────────────────

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "ééé...", fitText("éééééééé", 6))
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA("  "))
	assert.Equal(t, "v1", valueOrNA(" v1 "))
}
