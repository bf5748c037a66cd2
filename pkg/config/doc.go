// Package config loads and validates the pomdeps configuration document.
//
// # Document
//
// The configuration is a key-value object with exactly seven fields:
//
//	{
//	  "package_name": "org.apache.commons:commons-lang3",
//	  "repo_url": "https://repo1.maven.org/maven2/",
//	  "test_mode": false,
//	  "version": "3.12.0",
//	  "output_image": "graph.png",
//	  "max_depth": 3,
//	  "filter_substring": "commons"
//	}
//
// [Load] chooses the syntax from the file extension: .yaml and .yml are
// decoded as YAML, .toml as TOML, everything else as JSON.
//
// # Validation
//
// [Validate] turns the raw document into a typed [Config]. It fails fast on
// the first violated rule and reports it as a coded error from
// [github.com/matzehuels/pomdeps/pkg/errors].
//
// The output_image and max_depth fields are validated but nothing in pomdeps
// reads them yet.
package config
