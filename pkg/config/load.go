package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

// DefaultPath is the configuration file used when no path is given.
const DefaultPath = "config.json"

// Raw is a configuration document as decoded from disk, before validation.
// Keys are field names; values keep the dynamic types of the source format.
type Raw map[string]any

// Format identifies the syntax of a configuration document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat picks the document format from the file extension.
// Unknown or missing extensions are treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads the configuration document at path and returns it unmodified.
//
// Errors:
//   - FILE_NOT_FOUND if path does not exist
//   - PARSE_ERROR if the file cannot be read or is not well-formed
//   - INVALID_SHAPE if the top-level value is not a key-value object
//
// The file is closed before Load returns on every path.
func Load(path string) (Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.New(pkgerrors.ErrCodeFileNotFound, "configuration file %q not found", path)
		}
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeParse, err, "read %s", path)
	}
	defer f.Close()

	return Decode(f, DetectFormat(path), path)
}

// Decode parses a configuration document of the given format from r.
// The name is used only in error messages.
func Decode(r io.Reader, format Format, name string) (Raw, error) {
	doc, err := decode(r, format)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeParse, err, "parse %s", name)
	}
	raw, ok := doc.(map[string]any)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidShape,
			"%s: expected a key-value object at the top level, got %s", name, describe(doc))
	}
	return Raw(raw), nil
}

func decode(r io.Reader, format Format) (any, error) {
	switch format {
	case FormatYAML:
		var doc any
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
		return doc, nil
	case FormatTOML:
		doc := make(map[string]any)
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
		return doc, nil
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected data after top-level value")
		}
		return doc, nil
	}
}

// describe names the dynamic kind of a decoded value for shape errors.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a list"
	case map[any]any:
		return "a mapping with non-string keys"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("a scalar (%T)", v)
	}
}
