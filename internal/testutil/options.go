package testutil

// setData holds data for a name set to be created.
type setData struct {
	name      string
	template  []string
	delimiter string
	group     string
	tags      string
}

func defaultSet(name string) setData {
	return setData{name: name, delimiter: "_"}
}

// SetOption configures a name set in the builder.
type SetOption func(*setData)

// WithTemplate sets the ordered element slots.
func WithTemplate(slots ...string) SetOption {
	return func(s *setData) { s.template = slots }
}

// WithDelimiter overrides the default "_" delimiter.
func WithDelimiter(delimiter string) SetOption {
	return func(s *setData) { s.delimiter = delimiter }
}

// WithGroup assigns the set to a group.
func WithGroup(group string) SetOption {
	return func(s *setData) { s.group = group }
}

// WithTags assigns comma-separated tags to the set.
func WithTags(tags string) SetOption {
	return func(s *setData) { s.tags = tags }
}
