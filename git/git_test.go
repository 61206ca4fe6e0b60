package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRemote(t *testing.T) {
	cases := []struct {
		url   string
		owner string
		name  string
	}{
		{"git@github.com:octocat/Hello-World.git", "octocat", "Hello-World"},
		{"ssh://git@github.com/octocat/Hello-World.git", "octocat", "Hello-World"},
		{"https://github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"https://user@github.com/octocat/Hello-World.git", "octocat", "Hello-World"},
	}

	for _, c := range cases {
		remote, err := findRemote(c.url)
		assert.NoError(t, err, c.url)
		assert.Equal(t, c.owner, remote.Owner)
		assert.Equal(t, c.name, remote.Name)
		assert.Equal(t, c.owner+"/"+c.name, remote.FullName())
	}
}

func TestFindRemoteRejectsUnknownHosts(t *testing.T) {
	_, err := findRemote("git@gitlab.com:group/project.git")
	assert.ErrorContains(t, err, "unknown git remote")
}

func TestFindRemoteRejectsMalformedSlugs(t *testing.T) {
	_, err := findRemote("git@github.com:only-one-part")
	assert.ErrorContains(t, err, "owner and name")
}
