package naming

import (
	"slices"
	"strings"
)

// GroupAll is the group filter value that matches every NameSet.
const GroupAll = "All"

// NameSet is a named, ordered arrangement of Element references plus the
// delimiter and classification metadata used for filtering.
type NameSet struct {
	Name      string
	Template  []string // Element names, by reference; duplicates allowed
	Delimiter string
	Group     string   // exact-match filter key, "" = ungrouped
	Tags      []string // case-insensitive substring filter keys
}

// HasTag reports whether any tag contains needle as a case-insensitive
// substring. An empty needle matches everything.
func (s *NameSet) HasTag(needle string) bool {
	return MatchesFilter(s.Group, s.Tags, GroupAll, needle)
}

// MatchesFilter is the single group/tag filter predicate: groupFilter must
// be GroupAll or match the group exactly, and tagFilter must be empty or a
// case-insensitive substring of at least one tag. Every surface that narrows
// sets by group or tag goes through here.
func MatchesFilter(group string, tags []string, groupFilter, tagFilter string) bool {
	if groupFilter != GroupAll && group != groupFilter {
		return false
	}
	if tagFilter == "" {
		return true
	}
	needle := strings.ToLower(tagFilter)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// clone returns an independent copy.
func (s *NameSet) clone() *NameSet {
	return &NameSet{
		Name:      s.Name,
		Template:  slices.Clone(s.Template),
		Delimiter: s.Delimiter,
		Group:     s.Group,
		Tags:      slices.Clone(s.Tags),
	}
}

// NameSetRegistry owns the Project's NameSets in creation order.
type NameSetRegistry struct {
	sets   []*NameSet
	byName map[string]*NameSet
}

// NewNameSetRegistry creates an empty registry.
func NewNameSetRegistry() *NameSetRegistry {
	return &NameSetRegistry{byName: make(map[string]*NameSet)}
}

// Create adds a new NameSet. When cloneFrom is non-nil the template and
// delimiter are copied by value (independent sequences); group and tags
// always start blank regardless of cloning.
// Returns ErrDuplicateName if the name is already taken (case-sensitive).
func (r *NameSetRegistry) Create(name string, cloneFrom *NameSet) (*NameSet, error) {
	if _, exists := r.byName[name]; exists {
		return nil, ErrDuplicateName
	}
	set := &NameSet{Name: name}
	if cloneFrom != nil {
		set.Template = slices.Clone(cloneFrom.Template)
		set.Delimiter = cloneFrom.Delimiter
	}
	r.sets = append(r.sets, set)
	r.byName[name] = set
	return set, nil
}

// Get returns the NameSet by name, or nil if absent.
func (r *NameSetRegistry) Get(name string) *NameSet {
	return r.byName[name]
}

// Has reports whether a NameSet with the given name exists.
func (r *NameSetRegistry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// List returns the NameSets in list order: creation order until MoveSet
// rearranges them.
func (r *NameSetRegistry) List() []*NameSet {
	return r.sets
}

// Len returns the number of NameSets.
func (r *NameSetRegistry) Len() int {
	return len(r.sets)
}

// Reorder moves the template entry of the named set from fromIndex to
// toIndex, shifting intervening entries. The multiset of referenced Elements
// is invariant under this operation; only order changes.
// Equal indices are a no-op. Out-of-range indices return ErrIndexOutOfRange,
// which callers are expected to prevent.
func (r *NameSetRegistry) Reorder(name string, fromIndex, toIndex int) error {
	set := r.byName[name]
	if set == nil {
		return ErrUnknownNameSet
	}
	n := len(set.Template)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return nil
	}
	entry := set.Template[fromIndex]
	set.Template = slices.Delete(set.Template, fromIndex, fromIndex+1)
	set.Template = slices.Insert(set.Template, toIndex, entry)
	return nil
}

// MoveSet moves the set at fromIndex to toIndex in the registry's list
// order, shifting intervening sets. Templates are untouched; only the list
// position changes. Equal indices are a no-op; out-of-range indices return
// ErrIndexOutOfRange.
func (r *NameSetRegistry) MoveSet(fromIndex, toIndex int) error {
	n := len(r.sets)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return nil
	}
	set := r.sets[fromIndex]
	r.sets = slices.Delete(r.sets, fromIndex, fromIndex+1)
	r.sets = slices.Insert(r.sets, toIndex, set)
	return nil
}

// Filter returns the names of the NameSets passing both filters, preserving
// list order. A set passes when:
//   - groupFilter is GroupAll, or the set's group matches exactly, AND
//   - tagFilter is empty, or at least one tag contains it as a
//     case-insensitive substring.
func (r *NameSetRegistry) Filter(groupFilter, tagFilter string) []string {
	names := make([]string, 0, len(r.sets))
	for _, set := range r.sets {
		if !MatchesFilter(set.Group, set.Tags, groupFilter, tagFilter) {
			continue
		}
		names = append(names, set.Name)
	}
	return names
}

// Groups returns the distinct non-empty group values in first-seen order.
func (r *NameSetRegistry) Groups() []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, set := range r.sets {
		if set.Group == "" || seen[set.Group] {
			continue
		}
		seen[set.Group] = true
		groups = append(groups, set.Group)
	}
	return groups
}

// UpdateGroup replaces the group of the named set wholesale.
func (r *NameSetRegistry) UpdateGroup(name, group string) error {
	set := r.byName[name]
	if set == nil {
		return ErrUnknownNameSet
	}
	set.Group = group
	return nil
}

// UpdateTags replaces the tags of the named set wholesale, parsed from a
// comma-separated input: entries are trimmed and empty entries dropped.
func (r *NameSetRegistry) UpdateTags(name, input string) error {
	set := r.byName[name]
	if set == nil {
		return ErrUnknownNameSet
	}
	set.Tags = ParseTags(input)
	return nil
}

// ParseTags splits a comma-separated tag input into a clean tag list.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// clone returns a deep copy of the registry.
func (r *NameSetRegistry) clone() *NameSetRegistry {
	out := NewNameSetRegistry()
	for _, set := range r.sets {
		c := set.clone()
		out.sets = append(out.sets, c)
		out.byName[c.Name] = c
	}
	return out
}
