package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/editor"
	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

// profileFields are the editable profile inputs, in focus order.
var profileFields = []struct {
	field editor.Field
	label string
}{
	{field: editor.FieldEmail, label: "Email"},
	{field: editor.FieldFirstName, label: "First name"},
	{field: editor.FieldLastName, label: "Last name"},
}

type platformRow struct {
	name  textinput.Model
	value textinput.Model
}

// editorModel renders one editor.Editor. Focus walks the profile inputs
// first, then the name and value of every platform row.
type editorModel struct {
	ctx       context.Context
	editor    *editor.Editor
	buildInfo models.AppBuildInfo

	fields []textinput.Model
	rows   []platformRow
	focus  int

	picture      string
	errorMessage string
	status       string

	busy    bool
	spinner spinner.Model

	choosingPicture bool
	pathInput       textinput.Model

	showBuildInfo bool
}

func newEditorModel(ctx context.Context, ed *editor.Editor, buildInfo models.AppBuildInfo) editorModel {
	fields := make([]textinput.Model, len(profileFields))
	for i := range fields {
		fields[i] = newInput("")
	}

	pathInput := newInput("/path/to/picture.png")

	m := editorModel{
		ctx:       ctx,
		editor:    ed,
		buildInfo: buildInfo,
		fields:    fields,
		busy:      true,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		pathInput: pathInput,
	}
	m.setFocus(0)
	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Width = inputWidth
	in.Placeholder = placeholder
	return in
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), textinput.Blink)
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.choosingPicture {
			return m.updatePicturePrompt(msg)
		}
		if m.busy {
			return m, nil
		}
		return m.updateForm(msg)

	case loadedMsg:
		m.busy = false
		m.syncFromEditor()
		return m, nil
	case savedMsg:
		m.busy = false
		m.syncFromEditor()
		if msg.err != nil {
			return m, nil
		}
		m.status = "Profile saved"
		return m, cmdClearStatus()
	case uploadedMsg:
		m.busy = false
		m.syncFromEditor()
		if msg.err != nil {
			return m, nil
		}
		m.status = "Picture uploaded"
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Picture reference copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errorMessage = m.editor.Snapshot().ErrorMessage
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m editorModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.down):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, keys.up):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, keys.esc):
		m.editor.ClearError()
		m.errorMessage = ""
		return m, nil
	case key.Matches(msg, keys.save):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSave())
	case key.Matches(msg, keys.reload):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.addRow):
		row := m.editor.AddPlatform()
		m.syncFromEditor()
		m.setFocus(rowNameSlot(row))
		return m, nil
	case key.Matches(msg, keys.deleteRow):
		if row, _, ok := m.focusedRow(); ok {
			_ = m.editor.DeletePlatform(row)
			m.syncFromEditor()
		}
		return m, nil
	case key.Matches(msg, keys.nextName):
		return m.cycleName(1), nil
	case key.Matches(msg, keys.prevName):
		return m.cycleName(-1), nil
	case key.Matches(msg, keys.upload):
		m.choosingPicture = true
		m.pathInput.Reset()
		return m, m.pathInput.Focus()
	case key.Matches(msg, keys.copy):
		if strings.TrimSpace(m.picture) == "" {
			return m, nil
		}
		return m, m.cmdCopyReference()
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput lets the focused input handle msg and hands its new
// value to the editor.
func (m editorModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus < len(m.fields) {
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		_ = m.editor.SetField(profileFields[m.focus].field, m.fields[m.focus].Value())
		return m, cmd
	}

	row, isValue, ok := m.focusedRow()
	if !ok {
		return m, nil
	}
	if isValue {
		m.rows[row].value, cmd = m.rows[row].value.Update(msg)
		_ = m.editor.SetPlatformValue(row, m.rows[row].value.Value())
	} else {
		m.rows[row].name, cmd = m.rows[row].name.Update(msg)
		_ = m.editor.SetPlatformName(row, m.rows[row].name.Value())
	}
	return m, cmd
}

func (m editorModel) updatePicturePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.choosingPicture = false
		m.pathInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		m.choosingPicture = false
		m.pathInput.Blur()
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdUpload(path))
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m editorModel) cycleName(step int) editorModel {
	row, _, ok := m.focusedRow()
	if !ok {
		return m
	}
	_ = m.editor.CyclePlatformName(row, step)
	m.syncFromEditor()
	return m
}

// syncFromEditor copies the editor state into the inputs, keeping the focus
// where it was when the slot still exists.
func (m *editorModel) syncFromEditor() {
	state := m.editor.Snapshot()

	m.fields[0].SetValue(state.Profile.Email)
	m.fields[1].SetValue(state.Profile.FirstName)
	m.fields[2].SetValue(state.Profile.LastName)

	rows := make([]platformRow, len(state.Platforms))
	for i, p := range state.Platforms {
		rows[i] = platformRow{
			name:  newInput("platform"),
			value: newInput("link or handle"),
		}
		rows[i].name.Width = inputWidth / 2
		rows[i].name.SetValue(p.Name)
		rows[i].value.SetValue(p.Value)
	}
	m.rows = rows

	m.picture = state.PicturePreview
	m.errorMessage = state.ErrorMessage
	m.setFocus(m.focus)
}

func (m editorModel) slotCount() int {
	return len(m.fields) + 2*len(m.rows)
}

// setFocus moves the focus to slot i, clamped to the existing slots.
func (m *editorModel) setFocus(i int) {
	if i >= m.slotCount() {
		i = m.slotCount() - 1
	}
	if i < 0 {
		i = 0
	}
	m.focus = i

	for j := range m.fields {
		if j == i {
			m.fields[j].Focus()
		} else {
			m.fields[j].Blur()
		}
	}
	for r := range m.rows {
		m.rows[r].name.Blur()
		m.rows[r].value.Blur()
	}
	if row, isValue, ok := m.focusedRow(); ok {
		if isValue {
			m.rows[row].value.Focus()
		} else {
			m.rows[row].name.Focus()
		}
	}
}

// focusedRow reports the platform row under focus and whether its value
// (rather than its name) input is focused.
func (m editorModel) focusedRow() (row int, isValue bool, ok bool) {
	slot := m.focus - len(m.fields)
	if slot < 0 || slot >= 2*len(m.rows) {
		return 0, false, false
	}
	return slot / 2, slot%2 == 1, true
}

func rowNameSlot(row int) int {
	return len(profileFields) + 2*row
}

func (m editorModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderAbout(m.buildInfo))
	}

	var b strings.Builder
	for i, f := range profileFields {
		b.WriteString(label(f.label))
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(label("Picture"))
	b.WriteString(fitText(valueOrDash(m.picture), 2*inputWidth))
	b.WriteString("\n\n")

	b.WriteString("Platforms\n")
	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("  none, ctrl+a adds one"))
		b.WriteString("\n")
	}
	focusedRow, _, hasFocusedRow := m.focusedRow()
	for i, row := range m.rows {
		marker := "  "
		if hasFocusedRow && i == focusedRow {
			marker = focusedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%d. %s  %s\n", marker, i+1, row.name.View(), row.value.View()))
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" working...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errorMessage))
		b.WriteString("\n")
	}

	hotKeys := "tab/shift+tab: move  ctrl+s: save  ctrl+r: reload  esc: dismiss error\n" +
		"ctrl+a: add platform  ctrl+d: delete platform  ctrl+f/ctrl+b: next/previous platform name\n" +
		"ctrl+u: upload picture  ctrl+y: copy picture reference  f1: about"

	page := renderPage("PROFILE", b.String(), hotKeys)
	if m.choosingPicture {
		prompt := "Upload picture\n\n" + label("Path") + m.pathInput.View() + "\n\nenter: upload  esc: cancel"
		page += "\n\n" + overlayBoxStyle.Render(prompt)
	}

	return appStyle.Render(page)
}

func (m editorModel) cmdLoad() tea.Cmd {
	ctx, ed := m.ctx, m.editor
	return func() tea.Msg {
		return loadedMsg{err: ed.Load(ctx)}
	}
}

func (m editorModel) cmdSave() tea.Cmd {
	ctx, ed := m.ctx, m.editor
	return func() tea.Msg {
		return savedMsg{err: ed.Save(ctx)}
	}
}

func (m editorModel) cmdUpload(path string) tea.Cmd {
	ctx, ed := m.ctx, m.editor
	return func() tea.Msg {
		return uploadedMsg{err: ed.UploadPicture(ctx, path)}
	}
}

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// cmdCopyReference copies the reference stored on the server, which differs
// from the local preview right after an upload.
func (m editorModel) cmdCopyReference() tea.Cmd {
	ctx, ed := m.ctx, m.editor
	return func() tea.Msg {
		reference, err := ed.PictureReference(ctx)
		if err != nil {
			return copyFailedMsg{err: err}
		}
		if strings.TrimSpace(reference) == "" {
			return copyFailedMsg{err: errNoPictureReference}
		}
		if err = writeClipboard(reference); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{reference: reference}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
