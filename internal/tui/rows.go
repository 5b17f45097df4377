package tui

import (
	"fmt"

	"github.com/kingrea/workorder/internal/workorder"
)

// rowKind decides how a row reacts to keys and how it renders.
type rowKind int

const (
	rowText   rowKind = iota // free text, edited inline
	rowSelect                // one value from an option list
	rowCheck                 // toggled membership in a selection
	rowAction                // button
)

type action int

const (
	actionAddComponent action = iota
	actionRemoveComponent
	actionGenerate
	actionCopy
)

// row is one focusable line of the form. Rows are rebuilt from the current
// FormState on every update, so they never hold state of their own.
type row struct {
	kind        rowKind
	section     string
	label       string
	value       string
	placeholder string
	options     []string
	checked     bool
	componentID string
	act         action

	set    func(workorder.FormState, string) workorder.FormState
	toggle func(workorder.FormState) workorder.FormState
}

var componentFields = []struct {
	field workorder.ComponentField
	label string
}{
	{workorder.ComponentDepartment, "Department"},
	{workorder.ComponentType, "Type"},
	{workorder.ComponentSize, "Size"},
	{workorder.ComponentPaper, "Paper"},
	{workorder.ComponentWeight, "Weight"},
}

func (a *App) rows() []row {
	s := a.form
	rows := []row{
		textRow("Project", "Docket No.", "Enter docket number", workorder.FieldDocketNo, s),
		textRow("Project", "Drop Date", "YYYY-MM-DD", workorder.FieldDropDate, s),
		textRow("Project", "Quantity", "Enter quantity", workorder.FieldQuantity, s),
		textRow("Project", "Project Name", "", workorder.FieldProjectName, s),
		{
			kind:    rowSelect,
			section: "Project",
			label:   "Mail Type",
			value:   s.MailType,
			options: a.vocab.MailTypes,
			set: func(st workorder.FormState, v string) workorder.FormState {
				return st.Set(workorder.FieldMailType, v)
			},
		},
		textRow("Project", "Project Description", "", workorder.FieldProjectDescription, s),
		textRow("Project", "Final Output Description", "", workorder.FieldFinalOutputDescription, s),
	}

	for i, c := range s.Components {
		section := fmt.Sprintf("Component %d", i+1)
		id := c.ID
		for _, cf := range componentFields {
			field := cf.field
			rows = append(rows, row{
				kind:        rowSelect,
				section:     section,
				label:       cf.label,
				value:       c.Get(field),
				options:     a.vocab.ComponentOptions(field),
				componentID: id,
				set: func(st workorder.FormState, v string) workorder.FormState {
					return st.UpdateComponent(st.ComponentIndex(id), func(c workorder.Component) workorder.Component {
						return c.Set(field, v)
					})
				},
			})
		}
		for _, req := range withSelected(a.vocab.SpecialRequirements, c.Special) {
			req := req
			rows = append(rows, row{
				kind:        rowCheck,
				section:     section,
				label:       req,
				checked:     c.Special.Has(req),
				componentID: id,
				toggle: func(st workorder.FormState) workorder.FormState {
					return st.UpdateComponent(st.ComponentIndex(id), func(c workorder.Component) workorder.Component {
						return c.ToggleSpecial(req)
					})
				},
			})
		}
		rows = append(rows, row{
			kind:        rowAction,
			section:     section,
			label:       "Remove Component",
			componentID: id,
			act:         actionRemoveComponent,
		})
	}
	rows = append(rows, row{kind: rowAction, section: "Components", label: "Add Component", act: actionAddComponent})

	for _, item := range withSelected(a.vocab.QCChecklist, s.QCChecklist) {
		item := item
		rows = append(rows, row{
			kind:    rowCheck,
			section: "Quality Control Checklist",
			label:   item,
			checked: s.QCChecklist.Has(item),
			toggle:  func(st workorder.FormState) workorder.FormState { return st.ToggleQC(item) },
		})
	}
	for _, item := range withSelected(a.vocab.ProjectNotes, s.ProjectNotes) {
		item := item
		rows = append(rows, row{
			kind:    rowCheck,
			section: "Project Notes",
			label:   item,
			checked: s.ProjectNotes.Has(item),
			toggle:  func(st workorder.FormState) workorder.FormState { return st.ToggleNote(item) },
		})
	}

	rows = append(rows, row{kind: rowAction, section: "Output", label: "Generate Work Order", act: actionGenerate})
	if a.output != "" {
		rows = append(rows, row{kind: rowAction, section: "Output", label: "Copy to Clipboard", act: actionCopy})
	}
	return rows
}

func textRow(section, label, placeholder string, field workorder.Field, s workorder.FormState) row {
	return row{
		kind:        rowText,
		section:     section,
		label:       label,
		value:       s.Get(field),
		placeholder: placeholder,
		set: func(st workorder.FormState, v string) workorder.FormState {
			return st.Set(field, v)
		},
	}
}

// withSelected returns options followed by any selected items the options
// do not list, so values loaded from a file can still be cleared.
func withSelected(options []string, selected workorder.Selection) []string {
	out := append([]string(nil), options...)
	known := make(map[string]struct{}, len(options))
	for _, o := range options {
		known[o] = struct{}{}
	}
	for _, item := range selected.Items() {
		if _, ok := known[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}

// cycle returns the option after (or before) current. The empty value sits
// before the first option.
func cycle(options []string, current string, step int) string {
	values := append([]string{""}, options...)
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(values)) % len(values)
	return values[idx]
}
