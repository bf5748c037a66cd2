package maven

import (
	"fmt"
	"strings"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

// Coordinate identifies a Maven artifact independent of its version.
type Coordinate struct {
	GroupID    string // e.g. "org.apache.commons"
	ArtifactID string // e.g. "commons-lang3"
}

// String returns the coordinate as "groupId:artifactId".
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID
}

// Path returns the repository path of the coordinate: the groupId with dots
// replaced by slashes, followed by the artifactId.
// Example: "org/apache/commons/commons-lang3"
func (c Coordinate) Path() string {
	return strings.ReplaceAll(c.GroupID, ".", "/") + "/" + c.ArtifactID
}

// ParseCoordinate splits "groupId:artifactId" into a [Coordinate].
//
// The input must contain exactly one colon with non-empty text on both
// sides; anything else is an INVALID_FORMAT error naming the input.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, pkgerrors.New(pkgerrors.ErrCodeInvalidFormat,
			"invalid maven coordinate %q (expected groupId:artifactId)", s)
	}
	return Coordinate{GroupID: parts[0], ArtifactID: parts[1]}, nil
}

// DescriptorURL returns the URL of the POM for c at version in the
// repository rooted at repoURL, following the Maven 2 repository layout:
//
//	{repoURL}/{group path}/{artifactId}/{version}/{artifactId}-{version}.pom
//
// A single trailing slash on repoURL is dropped.
func DescriptorURL(repoURL string, c Coordinate, version string) string {
	base := strings.TrimSuffix(repoURL, "/")
	return fmt.Sprintf("%s/%s/%s/%s-%s.pom", base, c.Path(), version, c.ArtifactID, version)
}

// BuildDescriptorURL parses packageName and returns its descriptor URL.
func BuildDescriptorURL(packageName, repoURL, version string) (string, error) {
	c, err := ParseCoordinate(packageName)
	if err != nil {
		return "", err
	}
	return DescriptorURL(repoURL, c, version), nil
}
