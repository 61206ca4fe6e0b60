package slug

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestSplit(t *testing.T) {
	owner, repo, err := Split("octocat/Hello-World")
	assert.NilError(t, err)
	assert.Equal(t, owner, "octocat")
	assert.Equal(t, repo, "Hello-World")
}

func TestSplitKeepsExtraSlashes(t *testing.T) {
	// Only the first slash separates owner from repo.
	owner, repo, err := Split("org/group/project")
	assert.NilError(t, err)
	assert.Equal(t, owner, "org")
	assert.Equal(t, repo, "group/project")
}

func TestSplitRejectsPartialNames(t *testing.T) {
	for _, name := range []string{"", "octocat", "octocat/", "/Hello-World"} {
		_, _, err := Split(name)
		assert.ErrorContains(t, err, "expected a full repository name")
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, Join("octocat", "Hello-World"), "octocat/Hello-World")
}
