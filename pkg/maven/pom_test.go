package maven

import (
	"bytes"
	"reflect"
	"testing"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

const twoDeps = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>my-app</artifactId>
  <version>1.0.0</version>
  <dependencies>
    <dependency>
      <groupId>org.apache.commons</groupId>
      <artifactId>commons-text</artifactId>
      <version>1.10.0</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13.2</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`

func TestExtractDependencies(t *testing.T) {
	deps, err := ParseDescriptor(twoDeps, "")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}

	want := []Dependency{
		{GroupID: "org.apache.commons", ArtifactID: "commons-text", Version: "1.10.0", Scope: "compile"},
		{GroupID: "junit", ArtifactID: "junit", Version: "4.13.2", Scope: "test"},
	}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("got %+v, want %+v", deps, want)
	}
}

func TestExtractDependenciesFilter(t *testing.T) {
	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"org.apache.commons:commons-text", "junit:junit"}},
		{"commons", []string{"org.apache.commons:commons-text"}},
		{"apache", []string{"org.apache.commons:commons-text"}},
		{"unit", []string{"junit:junit"}},
		{"JUnit", nil},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			deps, err := ParseDescriptor(twoDeps, tt.filter)
			if err != nil {
				t.Fatalf("ParseDescriptor failed: %v", err)
			}
			var got []string
			for _, d := range deps {
				got = append(got, d.Coordinate().String())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filter %q: got %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestExtractDependenciesDefaults(t *testing.T) {
	doc := `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-simple</artifactId>
      <version></version>
      <scope>  </scope>
    </dependency>
    <dependency>
      <version>1.0</version>
    </dependency>
  </dependencies>
</project>`

	deps, err := ParseDescriptor(doc, "")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}

	want := []Dependency{
		{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: DefaultVersion, Scope: DefaultScope},
		{GroupID: "org.slf4j", ArtifactID: "slf4j-simple", Version: DefaultVersion, Scope: DefaultScope},
		{GroupID: "", ArtifactID: "", Version: "1.0", Scope: DefaultScope},
	}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("got %+v, want %+v", deps, want)
	}
	if DefaultVersion != "(not specified)" || DefaultScope != "compile" {
		t.Errorf("unexpected defaults %q / %q", DefaultVersion, DefaultScope)
	}
}

func TestExtractDependenciesNested(t *testing.T) {
	doc := `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.fasterxml.jackson</groupId>
        <artifactId>jackson-bom</artifactId>
        <version>2.15.0</version>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>com.fasterxml.jackson.core</groupId>
      <artifactId>jackson-databind</artifactId>
      <exclusions>
        <exclusion>
          <groupId>org.excluded</groupId>
          <artifactId>excluded</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
  </dependencies>
  <build>
    <plugins>
      <plugin>
        <artifactId>maven-surefire-plugin</artifactId>
        <dependencies>
          <dependency>
            <groupId>org.junit.platform</groupId>
            <artifactId>junit-platform-surefire-provider</artifactId>
            <version>1.3.2</version>
          </dependency>
        </dependencies>
      </plugin>
    </plugins>
  </build>
</project>`

	deps, err := ParseDescriptor(doc, "")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}

	var got []string
	for _, d := range deps {
		got = append(got, d.Coordinate().String())
	}
	want := []string{
		"com.fasterxml.jackson:jackson-bom",
		"com.fasterxml.jackson.core:jackson-databind",
		"org.junit.platform:junit-platform-surefire-provider",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractDependenciesNamespace(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want int
	}{
		{
			name: "no namespace",
			doc: `<project><dependencies><dependency>
  <groupId>a</groupId><artifactId>b</artifactId>
</dependency></dependencies></project>`,
			want: 0,
		},
		{
			name: "prefixed namespace",
			doc: `<pom:project xmlns:pom="http://maven.apache.org/POM/4.0.0"><pom:dependencies><pom:dependency>
  <pom:groupId>a</pom:groupId><pom:artifactId>b</pom:artifactId>
</pom:dependency></pom:dependencies></pom:project>`,
			want: 1,
		},
		{
			name: "foreign namespace",
			doc: `<project xmlns="http://example.com/other"><dependencies><dependency>
  <groupId>a</groupId><artifactId>b</artifactId>
</dependency></dependencies></project>`,
			want: 0,
		},
		{
			name: "dependencies as root",
			doc: `<dependencies xmlns="http://maven.apache.org/POM/4.0.0"><dependency>
  <groupId>a</groupId><artifactId>b</artifactId>
</dependency></dependencies>`,
			want: 0,
		},
		{
			name: "no dependencies",
			doc:  `<project xmlns="http://maven.apache.org/POM/4.0.0"><modelVersion>4.0.0</modelVersion></project>`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := ParseDescriptor(tt.doc, "")
			if err != nil {
				t.Fatalf("ParseDescriptor failed: %v", err)
			}
			if len(deps) != tt.want {
				t.Errorf("got %d deps, want %d: %+v", len(deps), tt.want, deps)
			}
		})
	}
}

func TestExtractDependenciesMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unclosed tag", `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies><dependency><groupId>a</groupId></dependency>`},
		{"mismatched tag", `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies></project>`},
		{"broken dependency", `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies><dependency><groupId>a</artifactId></dependency></dependencies></project>`},
		{"empty", ``},
		{"not xml", `this is not a descriptor`},
		{"two roots", `<project xmlns="http://maven.apache.org/POM/4.0.0"/><project/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := ParseDescriptor(tt.doc, "")
			if !pkgerrors.Is(err, pkgerrors.ErrCodeParse) {
				t.Fatalf("error = %v, want PARSE_ERROR", err)
			}
			if deps != nil {
				t.Errorf("expected no records on failure, got %+v", deps)
			}
		})
	}
}

func TestExtractDependenciesMalformedAfterDependencies(t *testing.T) {
	doc := twoDeps[:len(twoDeps)-len("</project>")]

	deps, err := ParseDescriptor(doc, "")
	if !pkgerrors.Is(err, pkgerrors.ErrCodeParse) {
		t.Fatalf("error = %v, want PARSE_ERROR", err)
	}
	if deps != nil {
		t.Errorf("partial result returned: %+v", deps)
	}
}

func TestExtractDependenciesByteOrderMark(t *testing.T) {
	body := `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies><dependency>` +
		`<groupId>a</groupId><artifactId>b</artifactId>` +
		`</dependency></dependencies></project>`

	tests := []struct {
		name string
		doc  string
	}{
		{"with declaration", "\ufeff<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" + body},
		{"without declaration", "\ufeff" + body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := ParseDescriptor(tt.doc, "")
			if err != nil {
				t.Fatalf("ParseDescriptor failed: %v", err)
			}
			want := []Dependency{{GroupID: "a", ArtifactID: "b", Version: DefaultVersion, Scope: DefaultScope}}
			if !reflect.DeepEqual(deps, want) {
				t.Errorf("got %+v, want %+v", deps, want)
			}
		})
	}

	if _, err := ParseDescriptor(body+"\ufeff", ""); !pkgerrors.Is(err, pkgerrors.ErrCodeParse) {
		t.Errorf("a mark after the root is text outside it, got %v", err)
	}
}

func TestExtractDependenciesNestedInDependency(t *testing.T) {
	doc := `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies>
  <dependency>
    <groupId>outer</groupId>
    <artifactId>outer</artifactId>
    <dependencies>
      <dependency><groupId>inner</groupId><artifactId>inner</artifactId><scope>test</scope></dependency>
    </dependencies>
    <version>1.0</version>
  </dependency>
</dependencies></project>`

	deps, err := ParseDescriptor(doc, "")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}
	want := []Dependency{
		{GroupID: "outer", ArtifactID: "outer", Version: "1.0", Scope: DefaultScope},
		{GroupID: "inner", ArtifactID: "inner", Version: DefaultVersion, Scope: "test"},
	}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("got %+v, want %+v", deps, want)
	}
}

func TestExtractDependenciesRepeatedChild(t *testing.T) {
	doc := `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies><dependency>
  <groupId>first</groupId>
  <groupId>second</groupId>
  <artifactId>lib</artifactId>
  <scope></scope>
  <scope>test</scope>
</dependency></dependencies></project>`

	deps, err := ParseDescriptor(doc, "")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}
	want := []Dependency{{GroupID: "first", ArtifactID: "lib", Version: DefaultVersion, Scope: DefaultScope}}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("got %+v, want %+v", deps, want)
	}
}

func TestExtractDependenciesUnboundPrefix(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name:    "element",
			doc:     `<project xmlns="http://maven.apache.org/POM/4.0.0"><x:foo/></project>`,
			wantErr: true,
		},
		{
			name:    "attribute",
			doc:     `<project xmlns="http://maven.apache.org/POM/4.0.0" x:attr="1"/>`,
			wantErr: true,
		},
		{
			name:    "out of scope",
			doc:     `<project xmlns="http://maven.apache.org/POM/4.0.0"><a xmlns:x="urn:x"/><x:b/></project>`,
			wantErr: true,
		},
		{
			name:    "declared on ancestor",
			doc:     `<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:x="urn:x"><a><x:b x:c="1"/></a></project>`,
			wantErr: false,
		},
		{
			name:    "xml prefix",
			doc:     `<project xmlns="http://maven.apache.org/POM/4.0.0" xml:lang="en"/>`,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := ParseDescriptor(tt.doc, "")
			if tt.wantErr {
				if !pkgerrors.Is(err, pkgerrors.ErrCodeParse) {
					t.Fatalf("error = %v, want PARSE_ERROR", err)
				}
				if deps != nil {
					t.Errorf("expected no records on failure, got %+v", deps)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDescriptor failed: %v", err)
			}
		})
	}
}

func TestExtractDependenciesLatin1(t *testing.T) {
	doc := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<project xmlns=\"http://maven.apache.org/POM/4.0.0\"><dependencies><dependency>" +
		"<groupId>org.caf\xe9</groupId><artifactId>cr\xe8me</artifactId>" +
		"</dependency></dependencies></project>")

	deps, err := ExtractDependencies(bytes.NewReader(doc), "")
	if err != nil {
		t.Fatalf("ExtractDependencies failed: %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("got %d deps, want 1", len(deps))
	}
	if deps[0].GroupID != "org.café" || deps[0].ArtifactID != "crème" {
		t.Errorf("got %+v", deps[0])
	}
}

func TestDependencyMatches(t *testing.T) {
	d := Dependency{GroupID: "org.apache.commons", ArtifactID: "commons-lang3"}

	tests := []struct {
		filter string
		want   bool
	}{
		{"", true},
		{"apache", true},
		{"lang3", true},
		{"org.apache.commons", true},
		{"Apache", false},
		{"guava", false},
		{"commons:commons", false},
	}

	for _, tt := range tests {
		if got := d.Matches(tt.filter); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}
