package workorder

import "fmt"

// Field identifies one scalar field of the form.
type Field int

const (
	FieldDocketNo Field = iota
	FieldDropDate
	FieldQuantity
	FieldProjectName
	FieldMailType
	FieldProjectDescription
	FieldFinalOutputDescription
)

var fieldNames = map[Field]string{
	FieldDocketNo:               "docket_no",
	FieldDropDate:               "drop_date",
	FieldQuantity:               "quantity",
	FieldProjectName:            "project_name",
	FieldMailType:               "mail_type",
	FieldProjectDescription:     "project_description",
	FieldFinalOutputDescription: "final_output_description",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ComponentField identifies one enum attribute of a component.
type ComponentField int

const (
	ComponentDepartment ComponentField = iota
	ComponentType
	ComponentSize
	ComponentPaper
	ComponentWeight
)

var componentFieldNames = map[ComponentField]string{
	ComponentDepartment: "department",
	ComponentType:       "type",
	ComponentSize:       "size",
	ComponentPaper:      "paper",
	ComponentWeight:     "weight",
}

func (f ComponentField) String() string {
	if name, ok := componentFieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("component_field(%d)", int(f))
}

// Component is one production line item of a work order.
type Component struct {
	// ID addresses the component while editing. It is never rendered.
	ID         string
	Department string
	Type       string
	Size       string
	Paper      string
	Weight     string
	Special    Selection
}

// Get returns the value of an enum attribute.
func (c Component) Get(field ComponentField) string {
	switch field {
	case ComponentDepartment:
		return c.Department
	case ComponentType:
		return c.Type
	case ComponentSize:
		return c.Size
	case ComponentPaper:
		return c.Paper
	case ComponentWeight:
		return c.Weight
	}
	return ""
}

// Set returns a copy of c with field replaced by value.
func (c Component) Set(field ComponentField, value string) Component {
	switch field {
	case ComponentDepartment:
		c.Department = value
	case ComponentType:
		c.Type = value
	case ComponentSize:
		c.Size = value
	case ComponentPaper:
		c.Paper = value
	case ComponentWeight:
		c.Weight = value
	}
	return c
}

// ToggleSpecial returns a copy of c with the special requirement toggled.
func (c Component) ToggleSpecial(value string) Component {
	c.Special = c.Special.Toggle(value)
	return c
}

// FormState is a snapshot of everything the user entered.
type FormState struct {
	DocketNo               string
	DropDate               string
	Quantity               string
	ProjectName            string
	MailType               string
	ProjectDescription     string
	FinalOutputDescription string
	Components             []Component
	QCChecklist            Selection
	ProjectNotes           Selection
}

// Get returns the value of a scalar field.
func (s FormState) Get(field Field) string {
	switch field {
	case FieldDocketNo:
		return s.DocketNo
	case FieldDropDate:
		return s.DropDate
	case FieldQuantity:
		return s.Quantity
	case FieldProjectName:
		return s.ProjectName
	case FieldMailType:
		return s.MailType
	case FieldProjectDescription:
		return s.ProjectDescription
	case FieldFinalOutputDescription:
		return s.FinalOutputDescription
	}
	return ""
}

// Set returns a copy of s with field replaced by value.
func (s FormState) Set(field Field, value string) FormState {
	s.Components = s.cloneComponents()
	switch field {
	case FieldDocketNo:
		s.DocketNo = value
	case FieldDropDate:
		s.DropDate = value
	case FieldQuantity:
		s.Quantity = value
	case FieldProjectName:
		s.ProjectName = value
	case FieldMailType:
		s.MailType = value
	case FieldProjectDescription:
		s.ProjectDescription = value
	case FieldFinalOutputDescription:
		s.FinalOutputDescription = value
	}
	return s
}

// AddComponent returns a copy of s with c appended.
func (s FormState) AddComponent(c Component) FormState {
	components := make([]Component, len(s.Components), len(s.Components)+1)
	copy(components, s.Components)
	s.Components = append(components, c)
	return s
}

// UpdateComponent returns a copy of s with the component at index replaced by
// fn's result. Out of range indexes leave the components unchanged.
func (s FormState) UpdateComponent(index int, fn func(Component) Component) FormState {
	s.Components = s.cloneComponents()
	if index < 0 || index >= len(s.Components) || fn == nil {
		return s
	}
	s.Components[index] = fn(s.Components[index])
	return s
}

// RemoveComponent returns a copy of s without the component at index.
func (s FormState) RemoveComponent(index int) FormState {
	if index < 0 || index >= len(s.Components) {
		s.Components = s.cloneComponents()
		return s
	}
	components := make([]Component, 0, len(s.Components)-1)
	components = append(components, s.Components[:index]...)
	s.Components = append(components, s.Components[index+1:]...)
	return s
}

// ComponentIndex returns the position of the component with the given ID, or -1.
func (s FormState) ComponentIndex(id string) int {
	for i, c := range s.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ToggleQC returns a copy of s with the checklist item toggled.
func (s FormState) ToggleQC(item string) FormState {
	s.Components = s.cloneComponents()
	s.QCChecklist = s.QCChecklist.Toggle(item)
	return s
}

// ToggleNote returns a copy of s with the project note toggled.
func (s FormState) ToggleNote(item string) FormState {
	s.Components = s.cloneComponents()
	s.ProjectNotes = s.ProjectNotes.Toggle(item)
	return s
}

func (s FormState) cloneComponents() []Component {
	if s.Components == nil {
		return nil
	}
	out := make([]Component, len(s.Components))
	copy(out, s.Components)
	return out
}
