// Package templates embeds the assets shipped inside the binary: the
// starter project document and the in-app help text.
package templates

import (
	_ "embed"
)

//go:embed starter_project.json
var starterProject []byte

//go:embed help.md
var helpText string

// StarterProject returns the project document used when no project file
// exists yet. It is a current-schema document; Load still runs it through
// the migrator like any other input.
func StarterProject() []byte {
	return starterProject
}

// Help returns the in-app help text as markdown.
func Help() string {
	return helpText
}
