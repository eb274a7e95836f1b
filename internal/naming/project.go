package naming

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Project is the entire persisted configuration: the Element and NameSet
// registries plus a display name. A Project is exclusively owned by one
// caller (the application model); all mutation happens through its methods
// and each operation is all-or-nothing with respect to the in-memory state.
//
// The active NameSet and the current Selection are transient and excluded
// from persistence.
type Project struct {
	Name     string
	Elements *ElementRegistry
	NameSets *NameSetRegistry

	active    string
	selection Selection
}

// NewProject creates an empty Project.
func NewProject(name string) *Project {
	return &Project{
		Name:      name,
		Elements:  NewElementRegistry(),
		NameSets:  NewNameSetRegistry(),
		selection: make(Selection),
	}
}

// CreateElement adds a new Element and, when an active NameSet exists,
// appends a slot referencing it to the active template. Elements always
// enter the Project alongside their template entry, so templates never
// acquire dangling references through this path.
func (p *Project) CreateElement(name string) (*Element, error) {
	el, err := p.Elements.Create(name)
	if err != nil {
		return nil, err
	}
	if set := p.ActiveNameSet(); set != nil {
		set.Template = append(set.Template, name)
	}
	return el, nil
}

// AddSlot appends a reference to an existing Element to the named set's
// template. References to missing Elements are rejected rather than lazily
// created; dangling template entries are never allowed in.
//
// When the slot joins the active template, an element with terms but no
// selection yet gets its first term selected, so the preview renders a name
// rather than a placeholder.
func (p *Project) AddSlot(setName, elementName string) error {
	set := p.NameSets.Get(setName)
	if set == nil {
		return ErrUnknownNameSet
	}
	el := p.Elements.Get(elementName)
	if el == nil {
		return fmt.Errorf("%w: %s", ErrUnknownElement, elementName)
	}
	set.Template = append(set.Template, elementName)
	if setName == p.active {
		if _, ok := p.selection.Get(elementName); !ok && len(el.Terms) > 0 {
			p.selection.Set(elementName, el.Terms[0])
		}
	}
	return nil
}

// MoveSlot moves the active template's slot at fromIndex to toIndex. Both
// indices must be within the template.
func (p *Project) MoveSlot(fromIndex, toIndex int) error {
	set := p.ActiveNameSet()
	if set == nil {
		return ErrUnknownNameSet
	}
	n := len(set.Template)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return fmt.Errorf("%w: %d -> %d (template has %d slots)", ErrIndexOutOfRange, fromIndex, toIndex, n)
	}
	slot := set.Template[fromIndex]
	set.Template = append(set.Template[:fromIndex], set.Template[fromIndex+1:]...)
	set.Template = append(set.Template[:toIndex], append([]string{slot}, set.Template[toIndex:]...)...)
	return nil
}

// RemoveSlot removes the slot at index from the active template. The Element
// it referenced stays in the Project; only the reference goes away.
func (p *Project) RemoveSlot(index int) error {
	set := p.ActiveNameSet()
	if set == nil {
		return ErrUnknownNameSet
	}
	if index < 0 || index >= len(set.Template) {
		return fmt.Errorf("%w: %d (template has %d slots)", ErrIndexOutOfRange, index, len(set.Template))
	}
	set.Template = append(set.Template[:index], set.Template[index+1:]...)
	return nil
}

// AddTerm appends a term to an Element's vocabulary through the primary
// user flow: a freshly inserted term becomes that Element's selection.
// Re-adding an existing term changes nothing, including the selection.
func (p *Project) AddTerm(elementName, term string) error {
	added, err := p.Elements.AddTerm(elementName, term)
	if err != nil {
		return err
	}
	if added {
		p.selection.Set(elementName, term)
	}
	return nil
}

// RemoveTerm removes a term from an Element's vocabulary. If the removed
// term was the Element's current selection, the selection falls back to the
// first remaining term, or to unset when none remain.
func (p *Project) RemoveTerm(elementName, term string) error {
	if err := p.Elements.RemoveTerm(elementName, term); err != nil {
		return err
	}
	if chosen, ok := p.selection.Get(elementName); ok && chosen == term {
		p.selection.fallback(p.Elements.Get(elementName))
	}
	return nil
}

// CreateNameSet adds a new NameSet, optionally cloning the active set's
// template and delimiter. The new set becomes active.
func (p *Project) CreateNameSet(name string, cloneFromActive bool) (*NameSet, error) {
	var cloneFrom *NameSet
	if cloneFromActive {
		cloneFrom = p.ActiveNameSet()
	}
	set, err := p.NameSets.Create(name, cloneFrom)
	if err != nil {
		return nil, err
	}
	p.SetActive(name)
	return set, nil
}

// SetActive marks the named set as active and recomputes the default
// selection for its template. Unknown names return ErrUnknownNameSet.
func (p *Project) SetActive(name string) error {
	set := p.NameSets.Get(name)
	if set == nil {
		return ErrUnknownNameSet
	}
	p.active = name
	p.selection = DefaultSelection(set, p.Elements)
	return nil
}

// ActiveNameSet returns the active set, or nil when none is active.
func (p *Project) ActiveNameSet() *NameSet {
	if p.active == "" {
		return nil
	}
	return p.NameSets.Get(p.active)
}

// ActiveName returns the active set's name, or "".
func (p *Project) ActiveName() string {
	return p.active
}

// Selection returns the current transient selection.
func (p *Project) Selection() Selection {
	return p.selection
}

// Select chooses a term for an Element. The term must exist in the
// Element's vocabulary.
func (p *Project) Select(elementName, term string) error {
	el := p.Elements.Get(elementName)
	if el == nil {
		return ErrUnknownElement
	}
	if !el.HasTerm(term) {
		return fmt.Errorf("element %q has no term %q", elementName, term)
	}
	p.selection.Set(elementName, term)
	return nil
}

// Preview renders the active template with the current selection,
// degrading missing selections to [elementName] placeholders.
func (p *Project) Preview() string {
	return RenderPreview(p.ActiveNameSet(), p.selection)
}

// Generator builds a combinatorial generator for the active NameSet.
func (p *Project) Generator() (*Generator, error) {
	set := p.ActiveNameSet()
	if set == nil {
		return nil, ErrUnknownNameSet
	}
	return NewGenerator(set, p.Elements)
}

// Clone returns a deep copy of the persisted state. Transient state (active
// set, selection) is reset in the copy.
func (p *Project) Clone() *Project {
	return &Project{
		Name:      p.Name,
		Elements:  p.Elements.clone(),
		NameSets:  p.NameSets.clone(),
		selection: make(Selection),
	}
}

// persisted document field names (current schema).
const (
	keyProjectName = "projectName"
	keyElements    = "elements"
	keyNameSets    = "nameSets"
)

type elementDoc struct {
	Terms []string `json:"terms"`
}

type nameSetDoc struct {
	Template  []string `json:"template"`
	Delimiter string   `json:"delimiter"`
	Group     string   `json:"group"`
	Tags      []string `json:"tags"`
}

// MarshalJSON encodes the Project in the current schema. The elements and
// nameSets mappings are written in registry (creation) order so documents
// round-trip without reshuffling; encoding/json would otherwise sort map
// keys.
func (p *Project) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeKey := func(key string) {
		b, _ := json.Marshal(key)
		buf.Write(b)
		buf.WriteByte(':')
	}

	writeKey(keyProjectName)
	nameJSON, err := json.Marshal(p.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(nameJSON)
	buf.WriteByte(',')

	writeKey(keyElements)
	buf.WriteByte('{')
	for i, el := range p.Elements.List() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(el.Name)
		doc := elementDoc{Terms: el.Terms}
		if doc.Terms == nil {
			doc.Terms = []string{}
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteString("},")

	writeKey(keyNameSets)
	buf.WriteByte('{')
	for i, set := range p.NameSets.List() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(set.Name)
		doc := nameSetDoc{
			Template:  set.Template,
			Delimiter: set.Delimiter,
			Group:     set.Group,
			Tags:      set.Tags,
		}
		if doc.Template == nil {
			doc.Template = []string{}
		}
		if doc.Tags == nil {
			doc.Tags = []string{}
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}
