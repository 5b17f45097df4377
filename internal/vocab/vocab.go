// Package vocab holds the fixed option lists offered by the work order form.
package vocab

import (
	"fmt"

	"github.com/kingrea/workorder/internal/workorder"
)

// Vocabulary groups every option list the form offers.
type Vocabulary struct {
	MailTypes           []string `yaml:"mail_types,omitempty" json:"mail_types"`
	ComponentTypes      []string `yaml:"component_types,omitempty" json:"component_types"`
	FinalSizes          []string `yaml:"final_sizes,omitempty" json:"final_sizes"`
	PaperTypes          []string `yaml:"paper_types,omitempty" json:"paper_types"`
	PaperWeights        []string `yaml:"paper_weights,omitempty" json:"paper_weights"`
	Departments         []string `yaml:"departments,omitempty" json:"departments"`
	SpecialRequirements []string `yaml:"special_requirements,omitempty" json:"special_requirements"`
	QCChecklist         []string `yaml:"qc_checklist,omitempty" json:"qc_checklist"`
	ProjectNotes        []string `yaml:"project_notes,omitempty" json:"project_notes"`
}

// Default returns the built-in option lists.
func Default() Vocabulary {
	return Vocabulary{
		MailTypes: []string{"PM Mail", "PM S/H", "NM Mail", "PUB MAIL", "LETTERMAIL", "METER"},
		ComponentTypes: []string{
			"Letter",
			"Reply Card",
			"Postcard",
			"Self-Mailer",
			"Buck slip",
			"Newsletter",
			"Survey",
			"Magazine",
			"Labels",
			"Envelopes",
			"Customized Product",
		},
		FinalSizes: []string{
			"8.5x11",
			"8.5x14",
			"11x17",
			"6x4",
			"5x7",
			"6x9",
			"3.5x8.5",
			"Custom size",
			"#10 WDW OE",
			"#10 NON-WDW Outer Env.",
			"#9 env",
			"BRE",
		},
		PaperTypes: []string{
			"Press Shell",
			"House Offset",
			"Lynx",
			"House Cover",
			"House Gloss Cover",
			"House Matte Text",
			"House Gloss Text",
			"Special Requested Paper",
		},
		PaperWeights: []string{"20#", "60#", "70#", "80#", "92.5#", "100#", "110#", "130#", "Custom"},
		Departments:  []string{"Laser", "Press", "Jet", "Memjet", "Inkjet", "Fold", "Inserting"},
		SpecialRequirements: []string{
			"MATCH",
			"Color-Duplex",
			"Color-Simplex",
			"B&W-Duplex",
			"B&W-Simplex",
		},
		QCChecklist: []string{
			"CSR SIGN-OFF",
			"SAMPLE VERIFICATION COMPLETE",
			"PICTURES NEEDED BEFORE INSERTING",
			"CLIENT PROOF APPROVAL",
			"DELIVERY DATE CONFIRMED",
		},
		ProjectNotes: []string{"Client Samples Requested"},
	}
}

// Merge returns v with every non-empty list in override replacing its
// counterpart.
func (v Vocabulary) Merge(override Vocabulary) Vocabulary {
	pick := func(base, next []string) []string {
		if len(next) > 0 {
			return append([]string(nil), next...)
		}
		return base
	}
	v.MailTypes = pick(v.MailTypes, override.MailTypes)
	v.ComponentTypes = pick(v.ComponentTypes, override.ComponentTypes)
	v.FinalSizes = pick(v.FinalSizes, override.FinalSizes)
	v.PaperTypes = pick(v.PaperTypes, override.PaperTypes)
	v.PaperWeights = pick(v.PaperWeights, override.PaperWeights)
	v.Departments = pick(v.Departments, override.Departments)
	v.SpecialRequirements = pick(v.SpecialRequirements, override.SpecialRequirements)
	v.QCChecklist = pick(v.QCChecklist, override.QCChecklist)
	v.ProjectNotes = pick(v.ProjectNotes, override.ProjectNotes)
	return v
}

// ComponentOptions returns the list backing a component attribute.
func (v Vocabulary) ComponentOptions(field workorder.ComponentField) []string {
	switch field {
	case workorder.ComponentDepartment:
		return v.Departments
	case workorder.ComponentType:
		return v.ComponentTypes
	case workorder.ComponentSize:
		return v.FinalSizes
	case workorder.ComponentPaper:
		return v.PaperTypes
	case workorder.ComponentWeight:
		return v.PaperWeights
	}
	return nil
}

// List is a named option list, used for listings.
type List struct {
	Name    string
	Options []string
}

// Lists returns every option list in display order.
func (v Vocabulary) Lists() []List {
	return []List{
		{Name: "Mail Types", Options: v.MailTypes},
		{Name: "Departments", Options: v.Departments},
		{Name: "Component Types", Options: v.ComponentTypes},
		{Name: "Final Sizes", Options: v.FinalSizes},
		{Name: "Paper Types", Options: v.PaperTypes},
		{Name: "Paper Weights", Options: v.PaperWeights},
		{Name: "Special Requirements", Options: v.SpecialRequirements},
		{Name: "QC Checklist", Options: v.QCChecklist},
		{Name: "Project Notes", Options: v.ProjectNotes},
	}
}

// Issue describes a value that is not part of its option list.
type Issue struct {
	Field string
	Value string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %q is not a known option", i.Field, i.Value)
}

// Check reports every non-empty enum value in state that its vocabulary does
// not list. Unknown values still render; callers decide whether they block.
func (v Vocabulary) Check(state workorder.FormState) []Issue {
	var issues []Issue
	flag := func(field, value string, options []string) {
		if value == "" || contains(options, value) {
			return
		}
		issues = append(issues, Issue{Field: field, Value: value})
	}
	flag(workorder.FieldMailType.String(), state.MailType, v.MailTypes)
	fields := []workorder.ComponentField{
		workorder.ComponentDepartment,
		workorder.ComponentType,
		workorder.ComponentSize,
		workorder.ComponentPaper,
		workorder.ComponentWeight,
	}
	for i, c := range state.Components {
		for _, field := range fields {
			flag(fmt.Sprintf("components[%d].%s", i, field), c.Get(field), v.ComponentOptions(field))
		}
		for _, special := range c.Special.Items() {
			flag(fmt.Sprintf("components[%d].special", i), special, v.SpecialRequirements)
		}
	}
	for _, item := range state.QCChecklist.Items() {
		flag("qc_checklist", item, v.QCChecklist)
	}
	for _, item := range state.ProjectNotes.Items() {
		flag("project_notes", item, v.ProjectNotes)
	}
	return issues
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
