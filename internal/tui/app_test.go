package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/workorder/internal/logbook"
	"github.com/kingrea/workorder/internal/workorder"
)

type recordingSink struct {
	texts []string
	err   error
}

func (s *recordingSink) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.texts = append(s.texts, text)
	return nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
}

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	base := []AppOption{WithIDGenerator(sequentialIDs())}
	return NewApp(append(base, opts...)...)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, a *App, keys ...string) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for _, k := range keys {
		model, cmd := a.Update(keyMsg(k))
		if model != a {
			t.Fatalf("expected the same app model back, got %T", model)
		}
		last = cmd
	}
	return last
}

// focusRow moves focus to the first row with label inside section (any
// section when empty).
func focusRow(t *testing.T, a *App, section, label string) {
	t.Helper()
	for i, r := range a.rows() {
		if r.label == label && (section == "" || r.section == section) {
			a.focus = i
			return
		}
	}
	t.Fatalf("no row %q in section %q", label, section)
}

func typeText(t *testing.T, a *App, label, value string) {
	t.Helper()
	focusRow(t, a, "Project", label)
	press(t, a, "enter")
	if !a.editing {
		t.Fatalf("expected %s to enter edit mode", label)
	}
	press(t, a, value, "enter")
	if a.editing {
		t.Fatalf("expected enter to commit %s", label)
	}
}

func TestGenerateWithoutComponentsShowsNotice(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "Docket No.", "42")
	before := app.State()

	press(t, app, "g")
	if app.notice != noComponentsNotice {
		t.Fatalf("expected no-components notice, got %q", app.notice)
	}
	if app.Output() != "" {
		t.Fatalf("expected no output, got %q", app.Output())
	}
	if app.State().DocketNo != before.DocketNo || len(app.State().Components) != 0 {
		t.Fatalf("failed generation must not change the form")
	}

	// the notice swallows keys until dismissed
	press(t, app, "down")
	if app.notice == "" {
		t.Fatalf("notice should stay until dismissed")
	}
	press(t, app, "enter")
	if app.notice != "" {
		t.Fatalf("enter should dismiss the notice")
	}
}

func TestSpringFlyerThroughKeys(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "Docket No.", "42")
	typeText(t, app, "Drop Date", "2025-01-15")
	typeText(t, app, "Quantity", "5000")
	typeText(t, app, "Project Name", "Spring Flyer")
	focusRow(t, app, "Project", "Mail Type")
	press(t, app, "right")

	focusRow(t, app, "", "Add Component")
	press(t, app, "enter")
	if len(app.State().Components) != 1 {
		t.Fatalf("expected one component")
	}
	if r, _ := app.focusedRow(); r.label != "Department" || r.componentID != "c1" {
		t.Fatalf("expected focus on the new component, got %+v", r.label)
	}
	press(t, app, "right", "right", "down") // Press
	press(t, app, "right", "down")          // Letter
	press(t, app, "right", "down")          // 8.5x11
	press(t, app, "right", "right", "down") // House Offset
	press(t, app, "right", "right", "right", "right")

	focusRow(t, app, "Quality Control Checklist", "CSR SIGN-OFF")
	press(t, app, "space")

	press(t, app, "g")
	if app.notice != "" {
		t.Fatalf("unexpected notice %q", app.notice)
	}
	want := "PROJECT INFORMATION\n" +
		"PROJECT NAME:\nSpring Flyer\n" +
		"\nCOMPONENTS\nPress Letter 8.5x11 - House Offset 80#" +
		"\n\nQUALITY CONTROL CHECKLIST\n☐ CSR SIGN-OFF" +
		"\n\nTrello Template\n42: Spring Flyer: PM Mail: 5000: 01-15\n"
	if diff := cmp.Diff(want, app.Output()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPickerFiltersOptions(t *testing.T) {
	app := newTestApp(t)
	focusRow(t, app, "", "Add Component")
	press(t, app, "enter")
	focusRow(t, app, "Component 1", "Paper")
	press(t, app, "enter")
	if app.picker == nil {
		t.Fatalf("expected picker to open")
	}
	press(t, app, "Lynx")
	if len(app.picker.matches) != 1 {
		t.Fatalf("expected one match, got %d", len(app.picker.matches))
	}
	press(t, app, "enter")
	if app.picker != nil {
		t.Fatalf("picker should close after choosing")
	}
	if got := app.State().Components[0].Paper; got != "Lynx" {
		t.Fatalf("expected Lynx, got %q", got)
	}
}

func TestPickerEscapeKeepsValue(t *testing.T) {
	app := newTestApp(t, WithState(workorder.FormState{MailType: "METER"}))
	focusRow(t, app, "Project", "Mail Type")
	press(t, app, "enter", "down", "esc")
	if got := app.State().MailType; got != "METER" {
		t.Fatalf("esc should keep the value, got %q", got)
	}
}

func TestEditEscapeDiscardsChanges(t *testing.T) {
	app := newTestApp(t, WithState(workorder.FormState{Quantity: "10"}))
	focusRow(t, app, "Project", "Quantity")
	press(t, app, "enter", "99", "esc")
	if got := app.State().Quantity; got != "10" {
		t.Fatalf("esc should discard edits, got %q", got)
	}
}

func TestToggleQCTwiceRestoresChecklist(t *testing.T) {
	start := workorder.FormState{QCChecklist: workorder.NewSelection("CLIENT PROOF APPROVAL")}
	app := newTestApp(t, WithState(start))
	focusRow(t, app, "Quality Control Checklist", "CSR SIGN-OFF")
	press(t, app, "space")
	if !app.State().QCChecklist.Has("CSR SIGN-OFF") {
		t.Fatalf("expected item to be selected")
	}
	press(t, app, "enter")
	if !app.State().QCChecklist.Equal(start.QCChecklist) {
		t.Fatalf("got %v want %v", app.State().QCChecklist.Items(), start.QCChecklist.Items())
	}
}

func TestSpecialRequirementsKeepSelectionOrder(t *testing.T) {
	app := newTestApp(t)
	focusRow(t, app, "", "Add Component")
	press(t, app, "enter")
	focusRow(t, app, "Component 1", "Color-Duplex")
	press(t, app, "space")
	focusRow(t, app, "Component 1", "MATCH")
	press(t, app, "space")
	got := app.State().Components[0].Special.Items()
	if diff := cmp.Diff([]string{"Color-Duplex", "MATCH"}, got); diff != "" {
		t.Fatalf("unexpected special order (-want +got):\n%s", diff)
	}
}

func TestRemoveComponent(t *testing.T) {
	state := workorder.FormState{}.
		AddComponent(workorder.Component{ID: "a", Type: "Letter"}).
		AddComponent(workorder.Component{ID: "b", Type: "Postcard"})
	app := newTestApp(t, WithState(state))
	focusRow(t, app, "Component 1", "Remove Component")
	press(t, app, "enter")
	components := app.State().Components
	if len(components) != 1 || components[0].ID != "b" {
		t.Fatalf("expected only component b to remain, got %+v", components)
	}
	if len(state.Components) != 2 {
		t.Fatalf("removal must not touch the original snapshot")
	}
}

func TestPreloadedComponentsWithoutIDs(t *testing.T) {
	state := workorder.FormState{}.
		AddComponent(workorder.Component{Type: "Letter"}).
		AddComponent(workorder.Component{Type: "Postcard"})
	app := newTestApp(t, WithState(state))

	components := app.State().Components
	if components[0].ID != "c1" || components[1].ID != "c2" {
		t.Fatalf("expected generated IDs, got %+v", components)
	}
	if state.Components[0].ID != "" {
		t.Fatalf("assigning IDs must not touch the caller's snapshot")
	}

	focusRow(t, app, "Component 2", "Remove Component")
	press(t, app, "enter")
	components = app.State().Components
	if len(components) != 1 || components[0].Type != "Letter" {
		t.Fatalf("expected Letter to remain, got %+v", components)
	}
}

func TestCopyToClipboard(t *testing.T) {
	sink := &recordingSink{}
	state := workorder.FormState{DocketNo: "7"}.AddComponent(workorder.Component{ID: "a"})
	app := newTestApp(t, WithState(state), WithClipboard(sink))

	if cmd := press(t, app, "y"); cmd != nil {
		t.Fatalf("copy before generating should do nothing")
	}
	press(t, app, "g")
	cmd := press(t, app, "y")
	if cmd == nil {
		t.Fatalf("expected flash timer command")
	}
	if len(sink.texts) != 1 || sink.texts[0] != app.Output() {
		t.Fatalf("clipboard got %q", sink.texts)
	}
	if !app.copied {
		t.Fatalf("expected copied badge")
	}
	if !strings.Contains(app.View(), "Copied!") {
		t.Fatalf("view should show the copied badge")
	}

	press(t, app, "y")
	app.Update(copiedExpiredMsg{seq: 1})
	if !app.copied {
		t.Fatalf("stale timer must not clear a newer copy")
	}
	app.Update(copiedExpiredMsg{seq: 2})
	if app.copied {
		t.Fatalf("expected badge to clear")
	}
}

func TestCopyFailureReported(t *testing.T) {
	sink := &recordingSink{err: errors.New("no display")}
	state := workorder.FormState{}.AddComponent(workorder.Component{ID: "a"})
	app := newTestApp(t, WithState(state), WithClipboard(sink))
	press(t, app, "g", "y")
	if app.copied {
		t.Fatalf("failed copy must not show the badge")
	}
	if !strings.Contains(app.statusMsg, "no display") {
		t.Fatalf("expected failure in status, got %q", app.statusMsg)
	}
}

func TestStrictVocabularyBlocksGeneration(t *testing.T) {
	state := workorder.FormState{MailType: "Carrier Pigeon"}.AddComponent(workorder.Component{ID: "a"})
	app := newTestApp(t, WithState(state), WithStrictVocabulary(true))
	press(t, app, "g")
	if !strings.Contains(app.notice, "Carrier Pigeon") {
		t.Fatalf("expected unknown option notice, got %q", app.notice)
	}
	if app.Output() != "" {
		t.Fatalf("strict mode must not produce output")
	}

	lenient := newTestApp(t, WithState(state))
	press(t, lenient, "g")
	if !strings.Contains(lenient.Output(), "Carrier Pigeon") {
		t.Fatalf("unknown values render as-is when not strict")
	}
}

func TestStrictModeReportsMissingComponentsFirst(t *testing.T) {
	app := newTestApp(t, WithState(workorder.FormState{MailType: "Carrier Pigeon"}), WithStrictVocabulary(true))
	press(t, app, "g")
	if app.notice != noComponentsNotice {
		t.Fatalf("notice = %q, want %q", app.notice, noComponentsNotice)
	}
}

func TestGenerationIsLogged(t *testing.T) {
	lb, err := logbook.New(filepath.Join(t.TempDir(), "logs", "session.log"))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	state := workorder.FormState{DocketNo: "42"}.AddComponent(workorder.Component{ID: "a"})
	app := newTestApp(t, WithState(state), WithLogbook(lb))
	press(t, app, "g")
	lines := lb.Tail(5)
	if len(lines) != 2 {
		t.Fatalf("expected open and generate entries, got %v", lines)
	}
	if !strings.Contains(lines[1], "Work order generated · 42") {
		t.Fatalf("unexpected entry %q", lines[1])
	}
	if !strings.Contains(app.View(), "LOG · session.log") {
		t.Fatalf("view should include the log panel")
	}
}

func TestViewRendersForm(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	view := app.View()
	for _, want := range []string{"Work Order Generator", "Docket No.", "Add Component", "CSR SIGN-OFF", "Generate Work Order"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	app := newTestApp(t)
	cmd := press(t, app, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
