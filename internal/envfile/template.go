package envfile

import (
	"bufio"
	"fmt"
	"os"
)

// ReadTemplate returns the parseable lines of a template in file order.
func ReadTemplate(path string) ([]TemplateLine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer file.Close()

	var lines []TemplateLine
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if tl, ok := ParseTemplateLine(scanner.Text()); ok {
			lines = append(lines, tl)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return lines, nil
}

// TemplateMapping maps each template key to its default value.
func TemplateMapping(lines []TemplateLine) *Mapping {
	m := NewMapping()
	for _, tl := range lines {
		m.Set(tl.Key, tl.Value)
	}
	return m
}
