package naming

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const currentDoc = `{
	"projectName": "Game Audio",
	"elements": {
		"SoundType": {"terms": ["SFX", "VO"]},
		"Action": {"terms": ["Jump", "Land"]}
	},
	"nameSets": {
		"Loco": {"template": ["SoundType", "Action"], "delimiter": "_", "group": "Combat", "tags": ["gun", "foley"]}
	}
}`

func TestMigrate_CurrentDocument(t *testing.T) {
	project, err := Migrate([]byte(currentDoc))
	require.NoError(t, err)

	require.Equal(t, "Game Audio", project.Name)
	require.Equal(t, []string{"SoundType", "Action"}, project.Elements.Names())
	require.Equal(t, []string{"SFX", "VO"}, project.Elements.Get("SoundType").Terms)

	set := project.NameSets.Get("Loco")
	require.NotNil(t, set)
	require.Equal(t, []string{"SoundType", "Action"}, set.Template)
	require.Equal(t, "_", set.Delimiter)
	require.Equal(t, "Combat", set.Group)
	require.Equal(t, []string{"gun", "foley"}, set.Tags)
}

func TestMigrate_LegacyKeyRenames(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "presets and categories",
			doc:  `{"categories": {"X": {"terms": ["a"]}}, "presets": {"P": {"template": ["X"], "delimiter": "-"}}}`,
		},
		{
			name: "wildcards synonym",
			doc:  `{"categories": {"X": {"terms": ["a"]}}, "wildcards": {"P": {"template": ["X"], "delimiter": "-"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := Migrate([]byte(tt.doc))
			require.NoError(t, err)
			require.True(t, project.Elements.Has("X"))
			require.True(t, project.NameSets.Has("P"))
			require.Equal(t, "-", project.NameSets.Get("P").Delimiter)
		})
	}
}

func TestMigrate_BareTermArrays(t *testing.T) {
	// The oldest documents stored element vocabularies as bare arrays.
	doc := `{"categories": {"X": ["a", "b", "a"]}, "presets": {"P": {"template": ["X"], "delimiter": ""}}}`

	project, err := Migrate([]byte(doc))
	require.NoError(t, err)
	// Duplicate terms in a legacy document are collapsed on insert.
	require.Equal(t, []string{"a", "b"}, project.Elements.Get("X").Terms)
}

func TestMigrate_BackfillsGroupAndTags(t *testing.T) {
	doc := `{"elements": {}, "presets": {"P": {"template": [], "delimiter": "_"}}}`

	project, err := Migrate([]byte(doc))
	require.NoError(t, err)

	set := project.NameSets.Get("P")
	require.Equal(t, "", set.Group)
	require.Equal(t, []string{}, set.Tags)
}

func TestMigrate_MissingMappings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty object", doc: `{}`},
		{name: "no namesets", doc: `{"elements": {}}`},
		{name: "no elements", doc: `{"nameSets": {}}`},
		{name: "not json", doc: `not json at all`},
		{name: "array root", doc: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Migrate([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidProjectFormat)
		})
	}
}

// A Term whose literal text is a legacy key name must survive migration:
// the renames are structural, applied to object keys, never to values.
func TestMigrate_TermNamedPresetsSurvives(t *testing.T) {
	doc := `{
		"elements": {"Meta": {"terms": ["presets", "categories", "wildcards"]}},
		"nameSets": {"presets": {"template": ["Meta"], "delimiter": "_", "group": "", "tags": ["presets"]}}
	}`

	project, err := Migrate([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"presets", "categories", "wildcards"}, project.Elements.Get("Meta").Terms)
	// Even a NameSet named after a legacy key keeps its name.
	require.True(t, project.NameSets.Has("presets"))
	require.Equal(t, []string{"presets"}, project.NameSets.Get("presets").Tags)
}

func TestMigrate_Idempotent(t *testing.T) {
	once, err := Migrate([]byte(currentDoc))
	require.NoError(t, err)

	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice, err := Migrate(onceJSON)
	require.NoError(t, err)

	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)
	require.JSONEq(t, string(onceJSON), string(twiceJSON))
}

func TestMigrate_RoundTripPreservesOrder(t *testing.T) {
	project, err := Migrate([]byte(currentDoc))
	require.NoError(t, err)

	out, err := json.Marshal(project)
	require.NoError(t, err)

	again, err := Migrate(out)
	require.NoError(t, err)
	require.Equal(t, project.Elements.Names(), again.Elements.Names())

	var names []string
	for _, set := range again.NameSets.List() {
		names = append(names, set.Name)
	}
	require.Equal(t, []string{"Loco"}, names)
}
