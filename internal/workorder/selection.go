package workorder

// Selection is an ordered set of strings. Items keep the order in which they
// were first selected.
type Selection struct {
	items []string
}

// NewSelection builds a selection from items, dropping duplicates after the
// first occurrence.
func NewSelection(items ...string) Selection {
	var out []string
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return Selection{items: out}
}

// Toggle adds item when absent and removes it when present.
func (s Selection) Toggle(item string) Selection {
	if s.Has(item) {
		out := make([]string, 0, len(s.items)-1)
		for _, existing := range s.items {
			if existing != item {
				out = append(out, existing)
			}
		}
		return Selection{items: out}
	}
	out := make([]string, len(s.items), len(s.items)+1)
	copy(out, s.items)
	return Selection{items: append(out, item)}
}

// Has reports whether item is selected.
func (s Selection) Has(item string) bool {
	for _, existing := range s.items {
		if existing == item {
			return true
		}
	}
	return false
}

// Len returns the number of selected items.
func (s Selection) Len() int { return len(s.items) }

// Items returns a copy of the selected items in selection order.
func (s Selection) Items() []string {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Equal reports whether both selections hold the same items in the same order.
func (s Selection) Equal(other Selection) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}
