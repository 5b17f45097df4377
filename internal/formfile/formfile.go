// Package formfile reads and writes work order forms as YAML documents so the
// summary can be composed without the interactive form.
package formfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/workorder/internal/workorder"
)

// ErrEmpty is returned when the input holds no document.
var ErrEmpty = errors.New("formfile: empty document")

type componentDoc struct {
	Department string   `yaml:"department"`
	Type       string   `yaml:"type"`
	Size       string   `yaml:"size"`
	Paper      string   `yaml:"paper"`
	Weight     string   `yaml:"weight"`
	Special    []string `yaml:"special,omitempty"`
}

type formDoc struct {
	DocketNo               string         `yaml:"docket_no"`
	DropDate               string         `yaml:"drop_date"`
	Quantity               string         `yaml:"quantity"`
	ProjectName            string         `yaml:"project_name"`
	MailType               string         `yaml:"mail_type"`
	ProjectDescription     string         `yaml:"project_description"`
	FinalOutputDescription string         `yaml:"final_output_description"`
	Components             []componentDoc `yaml:"components"`
	QCChecklist            []string       `yaml:"qc_checklist,omitempty"`
	ProjectNotes           []string       `yaml:"project_notes,omitempty"`
}

// Decode reads one form document. JSON input is accepted since it is valid
// YAML. Unknown keys are rejected.
func Decode(r io.Reader) (workorder.FormState, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc formDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return workorder.FormState{}, ErrEmpty
		}
		return workorder.FormState{}, fmt.Errorf("formfile: parse: %w", err)
	}
	return doc.state(), nil
}

// Encode writes state in the format Decode reads.
func Encode(w io.Writer, state workorder.FormState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromState(state)); err != nil {
		return fmt.Errorf("formfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("formfile: encode: %w", err)
	}
	return nil
}

func (d formDoc) state() workorder.FormState {
	state := workorder.FormState{
		DocketNo:               d.DocketNo,
		DropDate:               d.DropDate,
		Quantity:               d.Quantity,
		ProjectName:            d.ProjectName,
		MailType:               d.MailType,
		ProjectDescription:     d.ProjectDescription,
		FinalOutputDescription: d.FinalOutputDescription,
		QCChecklist:            workorder.NewSelection(d.QCChecklist...),
		ProjectNotes:           workorder.NewSelection(d.ProjectNotes...),
	}
	for _, c := range d.Components {
		state = state.AddComponent(workorder.Component{
			ID:         uuid.NewString(),
			Department: c.Department,
			Type:       c.Type,
			Size:       c.Size,
			Paper:      c.Paper,
			Weight:     c.Weight,
			Special:    workorder.NewSelection(c.Special...),
		})
	}
	return state
}

func fromState(state workorder.FormState) formDoc {
	doc := formDoc{
		DocketNo:               state.DocketNo,
		DropDate:               state.DropDate,
		Quantity:               state.Quantity,
		ProjectName:            state.ProjectName,
		MailType:               state.MailType,
		ProjectDescription:     state.ProjectDescription,
		FinalOutputDescription: state.FinalOutputDescription,
		Components:             []componentDoc{},
		QCChecklist:            state.QCChecklist.Items(),
		ProjectNotes:           state.ProjectNotes.Items(),
	}
	for _, c := range state.Components {
		doc.Components = append(doc.Components, componentDoc{
			Department: c.Department,
			Type:       c.Type,
			Size:       c.Size,
			Paper:      c.Paper,
			Weight:     c.Weight,
			Special:    c.Special.Items(),
		})
	}
	return doc
}

// Template returns a starter form with every field filled in.
func Template() workorder.FormState {
	return workorder.FormState{
		DocketNo:               "1001",
		DropDate:               "2025-01-15",
		Quantity:               "5000",
		ProjectName:            "Spring Flyer",
		MailType:               "PM Mail",
		ProjectDescription:     "Seasonal promotion",
		FinalOutputDescription: "Folded letter in #10 window envelope",
		QCChecklist:            workorder.NewSelection("CSR SIGN-OFF"),
	}.
		AddComponent(workorder.Component{
			Department: "Laser", Type: "Letter", Size: "8.5x11", Paper: "House Offset", Weight: "80#",
			Special: workorder.NewSelection("Color-Duplex"),
		}).
		AddComponent(workorder.Component{
			Department: "Inserting", Type: "Envelopes", Size: "#10 WDW OE", Paper: "House Offset", Weight: "20#",
		})
}
