// internal/tui/app.go
//
// This is the work order form. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: the FormState being edited plus UI bookkeeping
// 2. Update: key presses produce a new FormState (never patched in place)
// 3. View: renders the form, the generated summary and the session log
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kingrea/workorder/internal/clipboard"
	"github.com/kingrea/workorder/internal/logbook"
	"github.com/kingrea/workorder/internal/vocab"
	"github.com/kingrea/workorder/internal/workorder"
)

const copiedFlashDuration = 1500 * time.Millisecond

const noComponentsNotice = "Add at least one component to generate the work order."

// copiedExpiredMsg clears the "Copied!" badge. seq ignores stale timers when
// the user copies again before the previous one fired.
type copiedExpiredMsg struct {
	seq int
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithVocabulary sets the option lists offered by select and checkbox rows.
func WithVocabulary(v vocab.Vocabulary) AppOption {
	return func(a *App) { a.vocab = v }
}

// WithClipboard sets where "copy" sends the generated text.
func WithClipboard(sink clipboard.Sink) AppOption {
	return func(a *App) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// WithLogbook records session activity.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) { a.logbook = lb }
}

// WithStrictVocabulary blocks generation while any field holds an unknown option.
func WithStrictVocabulary(strict bool) AppOption {
	return func(a *App) { a.strict = strict }
}

// WithState preloads the form, for example from a form file. Components
// without an ID get one from the app's ID generator.
func WithState(state workorder.FormState) AppOption {
	return func(a *App) { a.form = state }
}

// WithIDGenerator overrides how new components are identified.
func WithIDGenerator(next func() string) AppOption {
	return func(a *App) {
		if next != nil {
			a.newID = next
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	form    workorder.FormState
	vocab   vocab.Vocabulary
	sink    clipboard.Sink
	logbook *logbook.Logbook
	strict  bool
	newID   func() string

	focus   int
	editing bool
	input   textinput.Model
	picker  *picker

	output   string
	viewport viewport.Model
	notice   string
	copied   bool
	copySeq  int

	statusMsg string

	width  int
	height int
}

// NewApp creates a new App instance with an empty form.
func NewApp(opts ...AppOption) *App {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 512

	app := &App{
		vocab:    vocab.Default(),
		sink:     clipboard.Disabled{},
		newID:    uuid.NewString,
		input:    input,
		viewport: viewport.New(40, 20),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.assignMissingIDs()
	app.statusMsg = "↑/↓ move · enter edit/toggle · g generate · y copy · q quit"
	app.logInfo("Session opened · %d component(s) loaded", len(app.form.Components))
	return app
}

// assignMissingIDs gives every component an ID so rows can address it.
func (a *App) assignMissingIDs() {
	for i, c := range a.form.Components {
		if c.ID != "" {
			continue
		}
		id := a.newID()
		a.form = a.form.UpdateComponent(i, func(c workorder.Component) workorder.Component {
			c.ID = id
			return c
		})
	}
}

// State returns the current form snapshot.
func (a *App) State() workorder.FormState { return a.form }

// Output returns the last generated summary, empty until generation succeeds.
func (a *App) Output() string { return a.output }

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeOutput()
		return a, nil

	case copiedExpiredMsg:
		if msg.seq == a.copySeq {
			a.copied = false
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch {
		case a.notice != "":
			return a.updateNotice(msg)
		case a.picker != nil:
			return a.updatePicker(msg)
		case a.editing:
			return a.updateEditing(msg)
		}
		return a.updateForm(msg)
	}

	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateNotice keeps the notice on screen until it is dismissed.
func (a *App) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ", "space":
		a.notice = ""
	}
	return a, nil
}

func (a *App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.picker = nil
	case "up", "ctrl+p", "shift+tab":
		a.picker.move(-1)
	case "down", "ctrl+n", "tab":
		a.picker.move(1)
	case "backspace":
		a.picker.backspace()
	case "enter":
		if value, ok := a.picker.selected(); ok {
			a.applyValue(value)
		}
		a.picker = nil
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			runes := msg.Runes
			if msg.Type == tea.KeySpace {
				runes = []rune{' '}
			}
			a.picker.appendQuery(runes)
		}
	}
	return a, nil
}

func (a *App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.commitEdit()
		return a, nil
	case "esc":
		a.stopEditing()
		return a, nil
	case "tab", "down":
		a.commitEdit()
		a.moveFocus(1)
		return a, nil
	case "shift+tab", "up":
		a.commitEdit()
		a.moveFocus(-1)
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k", "shift+tab":
		a.moveFocus(-1)
	case "down", "j", "tab":
		a.moveFocus(1)
	case "left", "h":
		a.cycleFocused(-1)
	case "right", "l":
		a.cycleFocused(1)
	case "g":
		a.generate()
	case "y":
		return a, a.copyOutput()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	case " ", "space":
		if r, ok := a.focusedRow(); ok && r.kind == rowCheck {
			a.form = r.toggle(a.form)
		}
	case "enter":
		return a.activate()
	}
	return a, nil
}

// activate runs the focused row: edit text, open a picker, toggle a
// checkbox or press a button.
func (a *App) activate() (tea.Model, tea.Cmd) {
	r, ok := a.focusedRow()
	if !ok {
		return a, nil
	}
	switch r.kind {
	case rowText:
		a.editing = true
		a.input.Placeholder = r.placeholder
		a.input.SetValue(r.value)
		a.input.CursorEnd()
		return a, a.input.Focus()
	case rowSelect:
		a.picker = newPicker(r.label, r.options, r.value)
	case rowCheck:
		a.form = r.toggle(a.form)
	case rowAction:
		return a, a.runAction(r)
	}
	return a, nil
}

func (a *App) runAction(r row) tea.Cmd {
	switch r.act {
	case actionAddComponent:
		id := a.newID()
		a.form = a.form.AddComponent(workorder.Component{ID: id})
		a.focusComponent(id)
		a.statusMsg = fmt.Sprintf("Component %d added", len(a.form.Components))
	case actionRemoveComponent:
		idx := a.form.ComponentIndex(r.componentID)
		a.form = a.form.RemoveComponent(idx)
		a.clampFocus()
		a.statusMsg = fmt.Sprintf("Component %d removed", idx+1)
	case actionGenerate:
		a.generate()
	case actionCopy:
		return a.copyOutput()
	}
	return nil
}

// generate recomputes the summary from scratch. On failure the previous
// output and the form are left as they were.
func (a *App) generate() {
	if len(a.form.Components) == 0 {
		a.notice = noComponentsNotice
		return
	}
	issues := a.vocab.Check(a.form)
	if a.strict && len(issues) > 0 {
		lines := make([]string, 0, len(issues)+1)
		lines = append(lines, "Unknown options:")
		for _, issue := range issues {
			lines = append(lines, "  "+issue.String())
		}
		a.notice = strings.Join(lines, "\n")
		return
	}
	text, err := workorder.Compose(a.form)
	if err != nil {
		if errors.Is(err, workorder.ErrNoComponents) {
			a.notice = noComponentsNotice
		} else {
			a.notice = err.Error()
		}
		return
	}
	a.output = text
	a.copied = false
	a.viewport.SetContent(text)
	a.viewport.GotoTop()
	a.logInfo("Work order generated · %s · %d component(s)", workorder.Headline(a.form), len(a.form.Components))
	if len(issues) > 0 {
		a.statusMsg = fmt.Sprintf("Work order generated · %d unknown option(s)", len(issues))
		a.logWarn("Work order uses %d unknown option(s): %s", len(issues), issues[0])
		return
	}
	a.statusMsg = "Work order generated"
}

func (a *App) copyOutput() tea.Cmd {
	if a.output == "" {
		a.statusMsg = "Generate the work order first"
		return nil
	}
	if err := a.sink.Copy(a.output); err != nil {
		a.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		a.logError("Copy failed: %v", err)
		return nil
	}
	a.copied = true
	a.copySeq++
	seq := a.copySeq
	a.statusMsg = "Copied!"
	a.logInfo("Work order copied to clipboard")
	return tea.Tick(copiedFlashDuration, func(time.Time) tea.Msg {
		return copiedExpiredMsg{seq: seq}
	})
}

func (a *App) applyValue(value string) {
	r, ok := a.focusedRow()
	if !ok || r.set == nil {
		return
	}
	a.form = r.set(a.form, value)
}

func (a *App) cycleFocused(step int) {
	r, ok := a.focusedRow()
	if !ok || r.kind != rowSelect {
		return
	}
	a.form = r.set(a.form, cycle(r.options, r.value, step))
}

func (a *App) commitEdit() {
	a.applyValue(a.input.Value())
	a.stopEditing()
}

func (a *App) stopEditing() {
	a.editing = false
	a.input.Blur()
	a.input.SetValue("")
}

func (a *App) focusedRow() (row, bool) {
	rows := a.rows()
	if a.focus < 0 || a.focus >= len(rows) {
		return row{}, false
	}
	return rows[a.focus], true
}

func (a *App) moveFocus(step int) {
	count := len(a.rows())
	a.focus = min(max(a.focus+step, 0), count-1)
}

func (a *App) clampFocus() {
	a.moveFocus(0)
}

func (a *App) focusComponent(id string) {
	for i, r := range a.rows() {
		if r.componentID == id {
			a.focus = i
			return
		}
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}
