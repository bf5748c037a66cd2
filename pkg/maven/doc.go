// Package maven reads dependency lists from Maven repositories.
//
// # Overview
//
// The package covers three steps of inspecting an artifact:
//
//  1. [BuildDescriptorURL] derives the POM URL of a coordinate and version
//     under a repository base URL (Maven 2 layout).
//  2. [Client.FetchDescriptor] downloads the POM with a single GET.
//  3. [ExtractDependencies] parses the POM and returns its dependency entries,
//     optionally narrowed by a substring filter.
//
// # Usage
//
//	url, err := maven.BuildDescriptorURL("org.apache.commons:commons-lang3",
//	    "https://repo1.maven.org/maven2/", "3.12.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := maven.NewClient(nil).FetchDescriptor(ctx, url)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deps, err := maven.ParseDescriptor(text, "commons")
//
// # Coordinates
//
// Artifacts are identified by "groupId:artifactId". The groupId's dots become
// path separators in the repository layout:
//
//	org.apache.commons:commons-lang3 @ 3.12.0
//	→ org/apache/commons/commons-lang3/3.12.0/commons-lang3-3.12.0.pom
//
// # Namespaces
//
// Only elements in the POM 4.0.0 namespace ([Namespace]) are read. Missing
// versions are reported as [DefaultVersion] and missing scopes as
// [DefaultScope]. No scope is filtered out.
package maven
