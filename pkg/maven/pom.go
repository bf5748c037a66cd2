package maven

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"golang.org/x/net/html/charset"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

// Namespace is the XML namespace of Maven POM 4.0.0 documents.
const Namespace = "http://maven.apache.org/POM/4.0.0"

// Defaults applied to dependency entries that omit a value.
const (
	DefaultVersion = "(not specified)"
	DefaultScope   = "compile"
)

// Dependency is one entry of a descriptor's dependency list.
// Records compare by value; two entries with the same fields are equal.
type Dependency struct {
	GroupID    string // empty if absent in the descriptor
	ArtifactID string // empty if absent in the descriptor
	Version    string // DefaultVersion if absent or empty
	Scope      string // DefaultScope if absent or empty
}

// Coordinate returns the dependency's "groupId:artifactId" identity.
func (d Dependency) Coordinate() Coordinate {
	return Coordinate{GroupID: d.GroupID, ArtifactID: d.ArtifactID}
}

// Matches reports whether filter occurs in the groupId or the artifactId.
// The test is case-sensitive; an empty filter matches every dependency.
func (d Dependency) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(d.GroupID, filter) || strings.Contains(d.ArtifactID, filter)
}

// ParseDescriptor is [ExtractDependencies] over descriptor text.
func ParseDescriptor(text, filter string) ([]Dependency, error) {
	return ExtractDependencies(strings.NewReader(text), filter)
}

// ExtractDependencies reads a POM document from r and returns its
// dependencies that match filter, in document order.
//
// Every <dependency> element in the POM namespace whose parent is a
// <dependencies> element in the same namespace is extracted, at any depth
// below the root, including one nested inside another dependency. Elements
// outside the namespace are ignored, so a document without the POM default
// namespace yields no dependencies. Only direct children of a dependency are
// read, and the first occurrence of a repeated child wins.
//
// Malformed XML, including a prefix with no namespace declaration in scope,
// is a PARSE_ERROR and no records are returned. A leading byte-order mark is
// skipped. An empty result is not an error.
func ExtractDependencies(r io.Reader, filter string) ([]Dependency, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var x extractor
	for first := true; ; first = false {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = x.start(t)
		case xml.EndElement:
			x.end()
		case xml.CharData:
			if first {
				t = bytes.TrimPrefix(t, byteOrderMark)
			}
			err = x.text(t)
		}
		if err != nil {
			return nil, parseError(err)
		}
	}

	if x.roots == 0 {
		return nil, parseError(errors.New("no root element"))
	}

	var deps []Dependency
	for _, p := range x.records {
		if d := p.record(); d.Matches(filter) {
			deps = append(deps, d)
		}
	}
	return deps, nil
}

// xmlNamespace is bound to the "xml" prefix without a declaration.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var byteOrderMark = []byte("\ufeff")

// dependencyFields are the dependency children that are read, indexed like
// pomDependency.values.
var dependencyFields = [...]string{"groupId", "artifactId", "version", "scope"}

func fieldIndex(local string) int {
	for i, f := range dependencyFields {
		if f == local {
			return i
		}
	}
	return -1
}

type element struct {
	name  xml.Name
	scope map[string]bool // namespace URIs declared here or by an ancestor
	rec   int             // index into records if this is a dependency, else -1
}

// extractor walks the token stream of one document.
type extractor struct {
	stack   []element
	records []pomDependency
	roots   int

	// Text of the dependency child being read.
	buf        bytes.Buffer
	fieldRec   int
	fieldSlot  int
	fieldDepth int // stack depth of that child, 0 if none
}

func (x *extractor) start(t xml.StartElement) error {
	depth := len(x.stack)
	if depth == 0 {
		if x.roots++; x.roots > 1 {
			return errors.New("multiple root elements")
		}
	}

	var scope map[string]bool
	if depth > 0 {
		scope = x.stack[depth-1].scope
	}
	cloned := false
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			if !cloned {
				scope = maps.Clone(scope)
				if scope == nil {
					scope = make(map[string]bool)
				}
				cloned = true
			}
			scope[a.Value] = true
		}
	}
	if !bound(scope, t.Name.Space) {
		return fmt.Errorf("unbound prefix %q on element <%s>", t.Name.Space, t.Name.Local)
	}
	for _, a := range t.Attr {
		if a.Name.Space != "xmlns" && !bound(scope, a.Name.Space) {
			return fmt.Errorf("unbound prefix %q on attribute %s of <%s>", a.Name.Space, a.Name.Local, t.Name.Local)
		}
	}

	e := element{name: t.Name, scope: scope, rec: -1}
	if depth >= 2 && isPOM(t.Name, "dependency") && isPOM(x.stack[depth-1].name, "dependencies") {
		e.rec = len(x.records)
		x.records = append(x.records, pomDependency{})
	} else if depth > 0 && x.fieldDepth == 0 && t.Name.Space == Namespace {
		if parent := x.stack[depth-1]; parent.rec >= 0 {
			if i := fieldIndex(t.Name.Local); i >= 0 && !x.records[parent.rec].seen[i] {
				x.records[parent.rec].seen[i] = true
				x.fieldRec, x.fieldSlot, x.fieldDepth = parent.rec, i, depth+1
				x.buf.Reset()
			}
		}
	}
	x.stack = append(x.stack, e)
	return nil
}

func (x *extractor) end() {
	if len(x.stack) == x.fieldDepth {
		x.records[x.fieldRec].values[x.fieldSlot] = x.buf.String()
		x.fieldDepth = 0
	}
	x.stack = x.stack[:len(x.stack)-1]
}

func (x *extractor) text(t xml.CharData) error {
	switch len(x.stack) {
	case 0:
		if len(bytes.TrimSpace(t)) > 0 {
			return errors.New("text outside the root element")
		}
	case x.fieldDepth:
		x.buf.Write(t)
	}
	return nil
}

func bound(scope map[string]bool, space string) bool {
	return space == "" || space == xmlNamespace || scope[space]
}

func isPOM(name xml.Name, local string) bool {
	return name.Space == Namespace && name.Local == local
}

func parseError(cause error) error {
	return pkgerrors.Wrap(pkgerrors.ErrCodeParse, cause, "malformed descriptor XML")
}

// pomDependency holds the raw child text of one <dependency> element.
type pomDependency struct {
	values [len(dependencyFields)]string
	seen   [len(dependencyFields)]bool
}

func (p pomDependency) record() Dependency {
	return Dependency{
		GroupID:    strings.TrimSpace(p.values[0]),
		ArtifactID: strings.TrimSpace(p.values[1]),
		Version:    orDefault(p.values[2], DefaultVersion),
		Scope:      orDefault(p.values[3], DefaultScope),
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
