package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML content feed from path.
func LoadFile(path string) (Feed, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Feed{}, errors.New("content file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Feed{}, fmt.Errorf("read content file: %w", err)
	}
	feed, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Feed{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return feed, nil
}

// Decode parses a YAML content feed. Unknown fields and subject keys outside
// the enumeration are rejected; field values are not otherwise checked.
func Decode(r io.Reader) (Feed, error) {
	if r == nil {
		return Feed{}, errors.New("content reader is required")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var feed Feed
	if err := dec.Decode(&feed); err != nil {
		if errors.Is(err, io.EOF) {
			return Feed{}, errors.New("content feed is empty")
		}
		return Feed{}, fmt.Errorf("parse yaml: %w", err)
	}
	for key := range feed.Primary.SubjectSupport {
		if !key.Valid() {
			return Feed{}, fmt.Errorf("unknown subject key %q", key)
		}
	}
	return feed, nil
}
