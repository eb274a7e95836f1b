package naming

import "strings"

// RenderPreview joins the template's slots with the set's delimiter,
// substituting the selected term for each Element, or a symbolic
// [elementName] placeholder where no term is selected.
//
// This is a pure, total function: missing selections and even a nil set
// degrade to placeholders or "" rather than errors.
func RenderPreview(set *NameSet, selection Selection) string {
	if set == nil {
		return ""
	}
	parts := make([]string, len(set.Template))
	for i, name := range set.Template {
		if term, ok := selection.Get(name); ok {
			parts[i] = term
		} else {
			parts[i] = "[" + name + "]"
		}
	}
	return strings.Join(parts, set.Delimiter)
}
