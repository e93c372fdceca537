package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown catalog format %q", common.ErrInvalidConfig, name)
	}
}

// FormatFromPath guesses the format from a file name or URL path.
func FormatFromPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType guesses the format from a Content-Type header,
// falling back to the given format when the type says nothing useful.
func FormatFromContentType(contentType string, fallback Format) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fallback
	}
	switch {
	case strings.Contains(mediaType, "yaml"):
		return FormatYAML
	case strings.Contains(mediaType, "json"):
		return FormatJSON
	default:
		return fallback
	}
}

// document is the on-disk shape of a catalog.
type document struct {
	Restaurants []model.Restaurant `json:"restaurants" yaml:"restaurants"`
}

// Decode parses a catalog document. A document without a restaurants key
// decodes to an empty list.
func Decode(data []byte, format Format) ([]model.Restaurant, error) {
	var doc document

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", common.ErrCatalogMalformed)
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %w", common.ErrCatalogMalformed, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parse json: %w", common.ErrCatalogMalformed, err)
		}
	}

	restaurants := make([]model.Restaurant, 0, len(doc.Restaurants))
	for _, r := range doc.Restaurants {
		if r.Tags == nil {
			r.Tags = []string{}
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

// Encode writes restaurants as a catalog document.
func Encode(w io.Writer, restaurants []model.Restaurant, format Format) error {
	doc := document{Restaurants: restaurants}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml catalog: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json catalog: %w", err)
		}
		return nil
	}
}
