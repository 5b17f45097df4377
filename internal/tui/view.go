package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	logTailLines  = 5
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F6C177"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CCFD8"))
	copiedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Padding(0, 2)
)

// View renders the current state to a string.
func (a *App) View() string {
	width, height := a.size()
	rightWidth := max(36, width*2/5)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}
	bodyHeight := max(8, height-8)

	var left string
	switch {
	case a.notice != "":
		left = a.renderNotice()
	case a.picker != nil:
		left = a.renderPicker(bodyHeight)
	default:
		left = a.renderForm(leftWidth-4, bodyHeight)
	}
	leftBox := boxStyle.Width(max(20, leftWidth)).Render(left)

	body := leftBox
	if rightWidth > 0 {
		rightBox := boxStyle.Width(max(20, rightWidth)).Render(a.renderOutput())
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	}

	sections := []string{headerStyle.Render("Work Order Generator"), body}
	if rightWidth == 0 && a.output != "" {
		sections = append(sections, boxStyle.Render(a.renderOutput()))
	}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, mutedStyle.MarginTop(1).Render(a.statusMsg))
	return strings.Join(sections, "\n")
}

func (a *App) size() (int, int) {
	width, height := a.width, a.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (a *App) resizeOutput() {
	width, height := a.size()
	a.viewport.Width = max(20, width*2/5-4)
	a.viewport.Height = max(5, height-12)
}

// renderForm lays every row out and shows the window of lines around the
// focused row.
func (a *App) renderForm(width, height int) string {
	var lines []string
	focusLine := 0
	prevSection := ""
	for i, r := range a.rows() {
		if r.section != prevSection {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionStyle.Render(strings.ToUpper(r.section)))
			prevSection = r.section
		}
		focused := i == a.focus
		if focused {
			focusLine = len(lines)
		}
		lines = append(lines, a.renderRow(r, focused, width))
	}

	start := 0
	if len(lines) > height {
		start = min(max(0, focusLine-height/2), len(lines)-height)
	}
	end := min(len(lines), start+height)
	return strings.Join(lines[start:end], "\n")
}

func (a *App) renderRow(r row, focused bool, width int) string {
	cursor := "  "
	if focused {
		cursor = "› "
	}
	var text string
	switch r.kind {
	case rowText:
		value := r.value
		if focused && a.editing {
			value = a.input.View()
		} else if value == "" {
			value = mutedStyle.Render(firstNonEmpty(r.placeholder, "—"))
		}
		text = fmt.Sprintf("%s: %s", r.label, value)
	case rowSelect:
		value := r.value
		if value == "" {
			value = mutedStyle.Render("Select " + r.label)
		}
		text = fmt.Sprintf("%s: ‹ %s ›", r.label, value)
	case rowCheck:
		box := "[ ]"
		if r.checked {
			box = "[x]"
		}
		text = fmt.Sprintf("%s %s", box, r.label)
	case rowAction:
		text = buttonStyle.Render("[ " + r.label + " ]")
	}
	line := cursor + text
	if focused && !(r.kind == rowText && a.editing) {
		line = focusStyle.Render(line)
	}
	return lipgloss.NewStyle().MaxWidth(max(20, width)).Render(line)
}

func (a *App) renderPicker(height int) string {
	p := a.picker
	lines := []string{
		sectionStyle.Render("SELECT " + strings.ToUpper(p.title)),
		fmt.Sprintf("filter: %s", p.query),
		"",
	}
	if len(p.matches) == 0 {
		lines = append(lines, mutedStyle.Render("no matching options"))
	}
	visible := max(1, height-len(lines)-1)
	start := 0
	if len(p.matches) > visible {
		start = min(max(0, p.cursor-visible/2), len(p.matches)-visible)
	}
	for i := start; i < min(len(p.matches), start+visible); i++ {
		label := optionLabel(p.options[p.matches[i]])
		if i == p.cursor {
			lines = append(lines, focusStyle.Render("› "+label))
			continue
		}
		lines = append(lines, "  "+label)
	}
	lines = append(lines, mutedStyle.Render("type to filter · enter choose · esc cancel"))
	return strings.Join(lines, "\n")
}

func (a *App) renderNotice() string {
	return noticeStyle.Render(a.notice + "\n\n" + mutedStyle.Render("press enter to continue"))
}

func (a *App) renderOutput() string {
	title := sectionStyle.Render("WORK ORDER")
	if a.copied {
		title += "  " + copiedStyle.Render("Copied!")
	}
	if a.output == "" {
		return title + "\n" + mutedStyle.Render("Press g to generate the work order.")
	}
	return title + "\n" + a.viewport.View()
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(logTailLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := sectionStyle.Render(fmt.Sprintf("LOG · %s", fileName))
	body := mutedStyle.Render(strings.Join(lines, "\n"))
	return boxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
