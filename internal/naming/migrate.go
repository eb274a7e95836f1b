package naming

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Legacy top-level key names accepted by Migrate. Earlier versions of the
// tool shipped documents using these synonyms for the current schema keys.
var legacyKeyRenames = map[string]string{
	"presets":    keyNameSets,
	"wildcards":  keyNameSets,
	"categories": keyElements,
}

// Migrate normalizes a raw project document of any historical shape into a
// Project. It is a pure function over the input: the caller swaps the
// in-memory Project only after migration succeeds.
//
// The renames are structural: the document is parsed first and only the
// top-level object keys are renamed, so a Term or NameSet literally named
// "presets" is never corrupted the way a text substitution would.
// Migrating an already-current document is a no-op, and migrating twice
// equals migrating once.
func Migrate(raw []byte) (*Project, error) {
	keys, fields, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProjectFormat, err)
	}

	// Apply known key renames to the structural keys only. A current-schema
	// key wins over its legacy synonym if both are somehow present.
	renamed := make(map[string]json.RawMessage, len(fields))
	for _, key := range keys {
		target := key
		if t, ok := legacyKeyRenames[key]; ok {
			target = t
		}
		if _, taken := renamed[target]; taken && target != key {
			continue
		}
		renamed[target] = fields[key]
	}

	elementsRaw, ok := renamed[keyElements]
	if !ok {
		return nil, fmt.Errorf("%w: missing elements mapping", ErrInvalidProjectFormat)
	}
	nameSetsRaw, ok := renamed[keyNameSets]
	if !ok {
		return nil, fmt.Errorf("%w: missing nameSets mapping", ErrInvalidProjectFormat)
	}

	project := NewProject("")
	if nameRaw, ok := renamed[keyProjectName]; ok {
		if err := json.Unmarshal(nameRaw, &project.Name); err != nil {
			return nil, fmt.Errorf("%w: projectName: %v", ErrInvalidProjectFormat, err)
		}
	}

	if err := migrateElements(project, elementsRaw); err != nil {
		return nil, err
	}
	if err := migrateNameSets(project, nameSetsRaw); err != nil {
		return nil, err
	}

	return project, nil
}

// migrateElements fills the Element registry from the elements mapping.
// Two historical value shapes are accepted: a bare term array (oldest
// documents) and the current {"terms": [...]} object.
func migrateElements(project *Project, raw json.RawMessage) error {
	names, values, err := decodeObject(raw)
	if err != nil {
		return fmt.Errorf("%w: elements is not a mapping", ErrInvalidProjectFormat)
	}
	for _, name := range names {
		el, err := project.Elements.Create(name)
		if err != nil {
			return fmt.Errorf("%w: element %q: %v", ErrInvalidProjectFormat, name, err)
		}

		value := values[name]
		var terms []string
		if err := json.Unmarshal(value, &terms); err != nil {
			var doc elementDoc
			if err := json.Unmarshal(value, &doc); err != nil {
				return fmt.Errorf("%w: element %q", ErrInvalidProjectFormat, name)
			}
			terms = doc.Terms
		}

		// Dedup on insert; order within the document is preserved.
		for _, term := range terms {
			if !el.HasTerm(term) {
				el.Terms = append(el.Terms, term)
			}
		}
	}
	return nil
}

// migrateNameSets fills the NameSet registry from the nameSets mapping,
// backfilling the optional group ("") and tags ([]) fields that older
// documents lack.
func migrateNameSets(project *Project, raw json.RawMessage) error {
	names, values, err := decodeObject(raw)
	if err != nil {
		return fmt.Errorf("%w: nameSets is not a mapping", ErrInvalidProjectFormat)
	}
	for _, name := range names {
		var doc nameSetDoc
		if err := json.Unmarshal(values[name], &doc); err != nil {
			return fmt.Errorf("%w: nameSet %q", ErrInvalidProjectFormat, name)
		}

		set, err := project.NameSets.Create(name, nil)
		if err != nil {
			return fmt.Errorf("%w: nameSet %q: %v", ErrInvalidProjectFormat, name, err)
		}
		set.Template = doc.Template
		if set.Template == nil {
			set.Template = []string{}
		}
		set.Delimiter = doc.Delimiter
		set.Group = doc.Group
		set.Tags = doc.Tags
		if set.Tags == nil {
			set.Tags = []string{}
		}
	}
	return nil
}

// decodeObject parses a JSON object into its values while preserving key
// order, which encoding/json's map decoding discards. Key order matters:
// mapping iteration order is insertion order throughout the engine.
func decodeObject(raw []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		// Last occurrence wins on duplicate keys, matching encoding/json.
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}
