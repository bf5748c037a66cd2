// Package maventest provides an in-process Maven repository for tests.
//
// The repository serves POM documents under the standard layout and answers
// 404 for anything it does not hold:
//
//	repo := maventest.NewRepository(t)
//	repo.Publish("org.example:lib", "1.0.0", maventest.POM(
//	    maventest.Dep{GroupID: "junit", ArtifactID: "junit", Version: "4.13.2", Scope: "test"},
//	))
//	url := repo.URL() // use as repo_url
package maventest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Repository is a fake Maven repository backed by an httptest server.
// It is safe for concurrent use.
type Repository struct {
	server *httptest.Server

	mu       sync.Mutex
	docs     map[string]string
	statuses map[string]int
	requests []string
}

// NewRepository starts a repository that is shut down when t finishes.
func NewRepository(t testing.TB) *Repository {
	t.Helper()
	repo := &Repository{
		docs:     make(map[string]string),
		statuses: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/maven2/*", repo.serve)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		repo.record(req.URL.Path)
		http.NotFound(w, req)
	})

	repo.server = httptest.NewServer(r)
	t.Cleanup(repo.server.Close)
	return repo
}

// URL returns the repository base URL, suitable for the repo_url field.
func (r *Repository) URL() string {
	return r.server.URL + "/maven2"
}

// Publish stores body as the POM of coordinate ("groupId:artifactId") at version.
func (r *Repository) Publish(coordinate, version, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[pomPath(coordinate, version)] = body
}

// FailWith makes requests for the POM of coordinate at version answer status.
func (r *Repository) FailWith(coordinate, version string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[pomPath(coordinate, version)] = status
}

// Requests returns the request paths received so far, in order.
func (r *Repository) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

func (r *Repository) serve(w http.ResponseWriter, req *http.Request) {
	path := chi.URLParam(req, "*")
	r.record(req.URL.Path)

	r.mu.Lock()
	status, failing := r.statuses[path]
	body, ok := r.docs[path]
	r.mu.Unlock()

	switch {
	case failing:
		http.Error(w, http.StatusText(status), status)
	case !ok:
		http.NotFound(w, req)
	default:
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}
}

func (r *Repository) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, path)
}

func pomPath(coordinate, version string) string {
	group, artifact, _ := strings.Cut(coordinate, ":")
	return fmt.Sprintf("%s/%s/%s/%s-%s.pom", strings.ReplaceAll(group, ".", "/"), artifact, version, artifact, version)
}

// Dep describes a dependency entry for [POM]. Empty fields are omitted from
// the generated XML.
type Dep struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
}

// POM renders a minimal descriptor in the POM 4.0.0 namespace listing deps.
func POM(deps ...Dep) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <dependencies>
`)
	for _, d := range deps {
		b.WriteString("    <dependency>\n")
		writeElem(&b, "groupId", d.GroupID)
		writeElem(&b, "artifactId", d.ArtifactID)
		writeElem(&b, "version", d.Version)
		writeElem(&b, "scope", d.Scope)
		b.WriteString("    </dependency>\n")
	}
	b.WriteString("  </dependencies>\n</project>\n")
	return b.String()
}

func writeElem(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "      <%s>%s</%s>\n", name, value, name)
}
