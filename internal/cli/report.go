package cli

import (
	"fmt"
	"io"

	"github.com/matzehuels/pomdeps/pkg/config"
	"github.com/matzehuels/pomdeps/pkg/maven"
	"github.com/matzehuels/pomdeps/pkg/pipeline"
)

// printReport writes the dependency listing for r.
//
// Each dependency is one line of the form "groupId:artifactId:version (scope)".
// An empty list prints a distinct notice instead.
func printReport(w io.Writer, r *pipeline.Report) {
	printTitle(w, "Dependencies of %s %s", r.Config.PackageName, r.Config.Version)
	printDetail(w, "%s %s", iconArrow, r.URL)
	if r.Filtered() {
		printDetail(w, "filter: %q", r.Config.FilterSubstring)
	}
	printNewline(w)

	if len(r.Dependencies) == 0 {
		if r.Filtered() {
			printInfo(w, "No dependencies found matching %q", r.Config.FilterSubstring)
		} else {
			printInfo(w, "No dependencies found")
		}
		return
	}

	for _, d := range r.Dependencies {
		fmt.Fprintln(w, "  "+formatDependency(d))
	}
	printNewline(w)
	printSuccess(w, "%s %s", StyleNumber.Render(fmt.Sprint(len(r.Dependencies))), plural(len(r.Dependencies), "dependency", "dependencies"))
}

func formatDependency(d maven.Dependency) string {
	return StyleValue.Render(d.Coordinate().String()+":"+d.Version) + " " + styleScope.Render("("+d.Scope+")")
}

// printSettings writes the validated configuration in field order.
func printSettings(w io.Writer, cfg *config.Config) {
	printTitle(w, "Configuration")
	for _, e := range cfg.Entries() {
		printKeyValue(w, e.Key, e.Value)
	}
	printNewline(w)
	printSuccess(w, "Configuration is valid")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
