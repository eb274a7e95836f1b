package naming

import "slices"

// Element is a named slot with an ordered vocabulary of terms.
// Term order is significant: it drives both the default selection and the
// enumeration order, so terms are stored as a sequence, not a set.
type Element struct {
	Name  string
	Terms []string
}

// HasTerm reports whether term is present (case-sensitive exact match).
func (e *Element) HasTerm(term string) bool {
	return slices.Contains(e.Terms, term)
}

// clone returns an independent copy.
func (e *Element) clone() *Element {
	return &Element{Name: e.Name, Terms: slices.Clone(e.Terms)}
}

// ElementRegistry owns the Project's Elements in creation order.
type ElementRegistry struct {
	elements []*Element
	byName   map[string]*Element
}

// NewElementRegistry creates an empty registry.
func NewElementRegistry() *ElementRegistry {
	return &ElementRegistry{byName: make(map[string]*Element)}
}

// Create adds a new Element with an empty term vocabulary.
// Returns ErrDuplicateName if the name is already taken (case-sensitive).
func (r *ElementRegistry) Create(name string) (*Element, error) {
	if _, exists := r.byName[name]; exists {
		return nil, ErrDuplicateName
	}
	el := &Element{Name: name}
	r.elements = append(r.elements, el)
	r.byName[name] = el
	return el, nil
}

// Get returns the Element by name, or nil if absent.
func (r *ElementRegistry) Get(name string) *Element {
	return r.byName[name]
}

// Has reports whether an Element with the given name exists.
func (r *ElementRegistry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// List returns the Elements in creation order.
func (r *ElementRegistry) List() []*Element {
	return r.elements
}

// Names returns the Element names in creation order.
func (r *ElementRegistry) Names() []string {
	names := make([]string, len(r.elements))
	for i, el := range r.elements {
		names[i] = el.Name
	}
	return names
}

// Len returns the number of Elements.
func (r *ElementRegistry) Len() int {
	return len(r.elements)
}

// AddTerm appends term to the Element's vocabulary.
// No-op (reported by the bool) if the term is already present; uniqueness
// within one Element is an invariant enforced here, on insert.
// Returns ErrUnknownElement if the Element does not exist.
func (r *ElementRegistry) AddTerm(elementName, term string) (bool, error) {
	el := r.byName[elementName]
	if el == nil {
		return false, ErrUnknownElement
	}
	if el.HasTerm(term) {
		return false, nil
	}
	el.Terms = append(el.Terms, term)
	return true, nil
}

// RemoveTerm removes term from the Element's vocabulary by exact match.
// Removing an absent term is a no-op. Returns ErrUnknownElement if the
// Element does not exist.
func (r *ElementRegistry) RemoveTerm(elementName, term string) error {
	el := r.byName[elementName]
	if el == nil {
		return ErrUnknownElement
	}
	if i := slices.Index(el.Terms, term); i >= 0 {
		el.Terms = slices.Delete(el.Terms, i, i+1)
	}
	return nil
}

// clone returns a deep copy of the registry.
func (r *ElementRegistry) clone() *ElementRegistry {
	out := NewElementRegistry()
	for _, el := range r.elements {
		c := el.clone()
		out.elements = append(out.elements, c)
		out.byName[c.Name] = c
	}
	return out
}
