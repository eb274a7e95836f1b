// Package testutil provides builders for assembling test projects.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenwick/namesmith/internal/naming"
)

// elementData holds data for an element to be created.
type elementData struct {
	name  string
	terms []string
}

// Builder accumulates project data and creates it in the correct order.
type Builder struct {
	t        *testing.T
	name     string
	elements []elementData
	sets     []setData
}

// NewBuilder creates a builder for a test project.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, name: "Test Project"}
}

// Named sets the project name.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// WithElement adds an element with the given terms.
func (b *Builder) WithElement(name string, terms ...string) *Builder {
	b.elements = append(b.elements, elementData{name: name, terms: terms})
	return b
}

// WithNameSet adds a name set with optional configuration.
func (b *Builder) WithNameSet(name string, opts ...SetOption) *Builder {
	set := defaultSet(name)
	for _, opt := range opts {
		opt(&set)
	}
	b.sets = append(b.sets, set)
	return b
}

// Build creates the project. Elements are created before name sets so
// template slots always resolve.
func (b *Builder) Build() *naming.Project {
	b.t.Helper()
	project := naming.NewProject(b.name)

	for _, el := range b.elements {
		_, err := project.Elements.Create(el.name)
		require.NoError(b.t, err)
		for _, term := range el.terms {
			require.NoError(b.t, project.AddTerm(el.name, term))
		}
	}

	for _, set := range b.sets {
		_, err := project.CreateNameSet(set.name, false)
		require.NoError(b.t, err)
		for _, slot := range set.template {
			require.NoError(b.t, project.AddSlot(set.name, slot))
		}
		created := project.NameSets.Get(set.name)
		require.NotNil(b.t, created)
		created.Delimiter = set.delimiter
		if set.group != "" {
			require.NoError(b.t, project.NameSets.UpdateGroup(set.name, set.group))
		}
		if set.tags != "" {
			require.NoError(b.t, project.NameSets.UpdateTags(set.name, set.tags))
		}
	}

	if len(b.sets) > 0 {
		require.NoError(b.t, project.SetActive(b.sets[0].name))
	}

	return project
}
