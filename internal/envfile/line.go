package envfile

import "strings"

const exportPrefix = "export "

// Metadata keys understood in a template line's trailing comment.
const (
	MetaQuestion = "question"
	MetaEnum     = "enum"
	MetaType     = "type"
)

// Values of the MetaType key.
const (
	TypeNumber = "number"
	TypeBool   = "bool"
)

// Metadata holds key:value hints parsed from a template comment.
type Metadata map[string]string

type TemplateLine struct {
	Key      string
	Value    string
	Metadata Metadata
}

// ParseLine turns one env file line into a key/value pair. Blank lines,
// comments and lines without '=' yield ok == false.
func ParseLine(line string) (key, value string, ok bool) {
	key, rest, ok := splitAssignment(line)
	if !ok {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// ParseTemplateLine is ParseLine plus metadata extraction from the trailing
// comment. The first '#' after '=' always starts the comment, so a value
// cannot contain '#' in a template.
func ParseTemplateLine(line string) (TemplateLine, bool) {
	key, rest, ok := splitAssignment(line)
	if !ok {
		return TemplateLine{}, false
	}

	value, comment, _ := strings.Cut(rest, "#")
	return TemplateLine{
		Key:      key,
		Value:    strings.TrimSpace(value),
		Metadata: parseMetadata(strings.TrimSpace(comment)),
	}, true
}

func splitAssignment(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	trimmed = strings.TrimPrefix(trimmed, exportPrefix)

	key, rest, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, rest, true
}

func parseMetadata(comment string) Metadata {
	meta := Metadata{}
	if comment == "" {
		return meta
	}
	for _, part := range strings.Split(comment, "|") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return meta
}

// Question returns the prompt text, if any.
func (m Metadata) Question() (string, bool) {
	q, ok := m[MetaQuestion]
	return q, ok && q != ""
}

// Enum returns the trimmed, comma-separated choices, or nil.
func (m Metadata) Enum() []string {
	raw, ok := m[MetaEnum]
	if !ok {
		return nil
	}
	var choices []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			choices = append(choices, c)
		}
	}
	return choices
}

func (m Metadata) Type() string {
	return m[MetaType]
}
