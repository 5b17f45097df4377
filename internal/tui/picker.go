package tui

import (
	"github.com/sahilm/fuzzy"
)

const noneLabel = "(none)"

// picker lets the user choose a select row's value, narrowing the options
// with a fuzzy query as they type.
type picker struct {
	title   string
	options []string
	query   string
	matches []int
	cursor  int
}

func newPicker(title string, options []string, current string) *picker {
	p := &picker{
		title:   title,
		options: append([]string{""}, options...),
	}
	p.filter()
	for i, idx := range p.matches {
		if p.options[idx] == current {
			p.cursor = i
			break
		}
	}
	return p
}

func (p *picker) filter() {
	p.matches = p.matches[:0]
	if p.query == "" {
		for i := range p.options {
			p.matches = append(p.matches, i)
		}
	} else {
		for _, m := range fuzzy.Find(p.query, p.options) {
			p.matches = append(p.matches, m.Index)
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = max(0, len(p.matches)-1)
	}
}

func (p *picker) appendQuery(r []rune) {
	p.query += string(r)
	p.cursor = 0
	p.filter()
}

func (p *picker) backspace() {
	if p.query == "" {
		return
	}
	q := []rune(p.query)
	p.query = string(q[:len(q)-1])
	p.filter()
}

func (p *picker) move(step int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = (p.cursor + step + len(p.matches)) % len(p.matches)
}

func (p *picker) selected() (string, bool) {
	if len(p.matches) == 0 {
		return "", false
	}
	return p.options[p.matches[p.cursor]], true
}

func optionLabel(value string) string {
	if value == "" {
		return noneLabel
	}
	return value
}
