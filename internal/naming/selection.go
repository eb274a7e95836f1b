package naming

// Selection maps Element names to the term currently chosen for preview.
// It is transient state: never persisted, recomputed whenever the active
// NameSet or a referenced vocabulary changes.
type Selection map[string]string

// DefaultSelection builds the default selection for a template: the first
// term of each referenced Element. Elements with no terms stay unset, as do
// dangling references.
func DefaultSelection(set *NameSet, elements *ElementRegistry) Selection {
	sel := make(Selection)
	if set == nil {
		return sel
	}
	for _, name := range set.Template {
		if _, done := sel[name]; done {
			continue
		}
		if el := elements.Get(name); el != nil && len(el.Terms) > 0 {
			sel[name] = el.Terms[0]
		}
	}
	return sel
}

// Get returns the chosen term for an Element and whether one is set.
func (s Selection) Get(elementName string) (string, bool) {
	term, ok := s[elementName]
	return term, ok
}

// Set chooses a term for an Element.
func (s Selection) Set(elementName, term string) {
	s[elementName] = term
}

// fallback re-points the Element's selection after a term removal: the first
// remaining term, or unset when the vocabulary is empty.
func (s Selection) fallback(el *Element) {
	if len(el.Terms) == 0 {
		delete(s, el.Name)
		return
	}
	s[el.Name] = el.Terms[0]
}
