package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/xmazu/envzilla/internal/storage"
)

// Mapping is an insertion-ordered set of variables.
type Mapping struct {
	keys     []string
	keyIndex map[string]int
	values   map[string]string
}

func NewMapping() *Mapping {
	return &Mapping{
		keys:     []string{},
		keyIndex: make(map[string]int),
		values:   make(map[string]string),
	}
}

// Read loads an env file. A missing file yields an empty mapping.
func Read(path string) (*Mapping, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMapping(), nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m := NewMapping()

	scanner := bufio.NewScanner(file)
	const maxCapacity = 512 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		if key, value, ok := ParseLine(scanner.Text()); ok {
			m.Set(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return m, nil
}

// Write replaces path with one KEY=VALUE line per entry, in mapping order.
func Write(path string, m *Mapping) error {
	if err := storage.WriteFile(path, m.Bytes()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Bytes renders the mapping in env file format.
func (m *Mapping) Bytes() []byte {
	var b strings.Builder
	for _, key := range m.keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(m.values[key])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (m *Mapping) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set updates key in place, or appends it when new.
func (m *Mapping) Set(key, value string) {
	if _, exists := m.keyIndex[key]; !exists {
		m.keyIndex[key] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping) Delete(key string) bool {
	idx, ok := m.keyIndex[key]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:idx], m.keys[idx+1:]...)
	delete(m.keyIndex, key)
	delete(m.values, key)
	for i := idx; i < len(m.keys); i++ {
		m.keyIndex[m.keys[i]] = i
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	for _, key := range m.keys {
		c.Set(key, m.values[key])
	}
	return c
}
