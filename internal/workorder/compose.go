package workorder

import (
	"errors"
	"strings"
)

// ErrNoComponents is returned by Compose when the form has no components.
var ErrNoComponents = errors.New("workorder: add at least one component to generate the work order")

// CheckboxGlyph prefixes every checklist and note line.
const CheckboxGlyph = "☐"

const (
	headerProjectInfo = "PROJECT INFORMATION"
	headerComponents  = "COMPONENTS"
	headerQC          = "QUALITY CONTROL CHECKLIST"
	headerNotes       = "PROJECT NOTES"
	headerTrello      = "Trello Template"

	labelProjectName  = "PROJECT NAME:"
	labelDescription  = "PROJECT DESCRIPTION:"
	labelFinalProduct = "FINAL PRODUCT:"
)

// Compose renders the work order summary for state. The same state always
// yields the same text.
func Compose(state FormState) (string, error) {
	if len(state.Components) == 0 {
		return "", ErrNoComponents
	}

	var b strings.Builder
	b.WriteString(headerProjectInfo + "\n")
	writeBlock(&b, labelProjectName, state.ProjectName)
	writeBlock(&b, labelDescription, state.ProjectDescription)
	writeBlock(&b, labelFinalProduct, state.FinalOutputDescription)

	b.WriteString("\n" + headerComponents + "\n")
	b.WriteString(componentLines(state.Components))

	writeChecklist(&b, headerQC, state.QCChecklist)
	writeChecklist(&b, headerNotes, state.ProjectNotes)

	b.WriteString("\n\n" + headerTrello + "\n")
	b.WriteString(Headline(state))
	if state.DropDate != "" {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ComponentLine renders a single component. Empty attributes keep their
// separators so every line has the same shape.
func ComponentLine(c Component) string {
	line := c.Department + " " + c.Type + " " + c.Size + " - " + c.Paper + " " + c.Weight
	if c.Special.Len() > 0 {
		line += " - " + strings.Join(c.Special.Items(), ", ")
	}
	return line
}

// Headline returns the colon-joined Trello Template line without a trailing
// newline. The drop date contributes only its month and day.
func Headline(state FormState) string {
	var parts []string
	for _, value := range []string{state.DocketNo, state.ProjectName, state.MailType, state.Quantity} {
		if value != "" {
			parts = append(parts, value)
		}
	}
	if state.DropDate != "" {
		_, month, day := splitDate(state.DropDate)
		parts = append(parts, month+"-"+day)
	}
	return strings.Join(parts, ": ")
}

func componentLines(components []Component) string {
	lines := make([]string, len(components))
	for i, c := range components {
		lines[i] = ComponentLine(c)
	}
	return strings.Join(lines, "\n")
}

func writeBlock(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + "\n" + value + "\n")
}

func writeChecklist(b *strings.Builder, header string, items Selection) {
	if items.Len() == 0 {
		return
	}
	lines := make([]string, 0, items.Len())
	for _, item := range items.Items() {
		lines = append(lines, CheckboxGlyph+" "+item)
	}
	b.WriteString("\n\n" + header + "\n" + strings.Join(lines, "\n"))
}

// splitDate breaks a YYYY-MM-DD value on hyphens. Missing parts come back
// empty and anything after the third part is ignored.
func splitDate(value string) (year, month, day string) {
	parts := strings.Split(value, "-")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2]
}
