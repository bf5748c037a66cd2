package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

// Field names of the configuration document.
const (
	FieldPackageName     = "package_name"
	FieldRepoURL         = "repo_url"
	FieldTestMode        = "test_mode"
	FieldVersion         = "version"
	FieldOutputImage     = "output_image"
	FieldMaxDepth        = "max_depth"
	FieldFilterSubstring = "filter_substring"
)

// Fields lists the required fields in validation order.
var Fields = []string{
	FieldPackageName,
	FieldRepoURL,
	FieldTestMode,
	FieldVersion,
	FieldOutputImage,
	FieldMaxDepth,
	FieldFilterSubstring,
}

// Config is a validated configuration. It is not modified after [Validate]
// returns it.
type Config struct {
	PackageName     string // "groupId:artifactId"
	RepoURL         string // repository base URL
	TestMode        bool
	Version         string
	OutputImage     string // image file name; validated only
	MaxDepth        int    // >= 1; validated only
	FilterSubstring string // empty means no filtering
}

// Entry is one field of a Config rendered for display.
type Entry struct {
	Key   string
	Value string
}

// Entries returns the configuration fields in validation order.
func (c *Config) Entries() []Entry {
	return []Entry{
		{FieldPackageName, c.PackageName},
		{FieldRepoURL, c.RepoURL},
		{FieldTestMode, strconv.FormatBool(c.TestMode)},
		{FieldVersion, c.Version},
		{FieldOutputImage, c.OutputImage},
		{FieldMaxDepth, strconv.Itoa(c.MaxDepth)},
		{FieldFilterSubstring, c.FilterSubstring},
	}
}

// Validate checks raw against the field rules and returns a typed Config.
//
// All fields are first checked for presence in [Fields] order, then each
// field's rule is applied in the same order. The first violation is returned;
// errors are never collected.
//
// On success raw[max_depth] is replaced with its coerced int, so validating
// the same Raw twice yields equal configs and leaves raw unchanged.
func Validate(raw Raw) (*Config, error) {
	for _, field := range Fields {
		if _, ok := raw[field]; !ok {
			return nil, pkgerrors.New(pkgerrors.ErrCodeMissingField, "missing required field %q", field)
		}
	}

	var cfg Config
	var err error

	if cfg.PackageName, err = nonEmptyString(raw, FieldPackageName, "a non-empty string"); err != nil {
		return nil, err
	}
	if cfg.RepoURL, err = nonEmptyString(raw, FieldRepoURL, "a non-empty string"); err != nil {
		return nil, err
	}
	b, ok := raw[FieldTestMode].(bool)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidType, "field %q must be a boolean, got %s", FieldTestMode, typeName(raw[FieldTestMode]))
	}
	cfg.TestMode = b
	if cfg.Version, err = nonEmptyString(raw, FieldVersion, "a non-empty string"); err != nil {
		return nil, err
	}
	if cfg.OutputImage, err = nonEmptyString(raw, FieldOutputImage, "a non-empty string (image file name)"); err != nil {
		return nil, err
	}

	depth, ok := coerceInt(raw[FieldMaxDepth])
	if !ok || depth < 1 {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidValue, "field %q must be an integer >= 1", FieldMaxDepth)
	}
	cfg.MaxDepth = depth

	filter, ok := raw[FieldFilterSubstring].(string)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidType, "field %q must be a string, got %s", FieldFilterSubstring, typeName(raw[FieldFilterSubstring]))
	}
	cfg.FilterSubstring = filter

	raw[FieldMaxDepth] = depth
	return &cfg, nil
}

// nonEmptyString returns raw[field] if it is a string with non-blank content.
// A non-string is INVALID_TYPE; a blank string is INVALID_VALUE.
func nonEmptyString(raw Raw, field, rule string) (string, error) {
	s, ok := raw[field].(string)
	if !ok {
		return "", pkgerrors.New(pkgerrors.ErrCodeInvalidType, "field %q must be %s, got %s", field, rule, typeName(raw[field]))
	}
	if strings.TrimSpace(s) == "" {
		return "", pkgerrors.New(pkgerrors.ErrCodeInvalidValue, "field %q must be %s", field, rule)
	}
	return s, nil
}

// coerceInt converts the decoded forms of an integer into an int.
// Integral floats and decimal strings are accepted; fractional values,
// booleans and anything else are not.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int64ToInt(n)
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64ToInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// int64ToInt rejects values that do not fit the platform int.
func int64ToInt(n int64) (int, bool) {
	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
