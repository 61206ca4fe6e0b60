package git

import (
	"errors"
	"regexp"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Remote is a GitHub project inferred from the working directory.
type Remote struct {
	Owner string
	Name  string
}

// FullName returns the owner/name form used by the API.
func (r *Remote) FullName() string {
	return r.Owner + "/" + r.Name
}

var githubRemotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:ssh\://)?git@github\.com[:/](.*)`),
	regexp.MustCompile(`https://(?:.*@)?github\.com/(.*)`),
}

// InferProjectFromGitRemotes inspects the 'origin' remote of the repository
// containing the current working directory. The assumption is that origin
// points at the GitHub project the user wants to explore. This matching is a
// best effort approach.
func InferProjectFromGitRemotes() (*Remote, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.New("not inside a git repository; pass the repository name explicitly")
	}

	origin, err := repo.Remote("origin")
	if err != nil {
		return nil, errors.New("no 'origin' remote found; pass the repository name explicitly")
	}

	urls := origin.Config().URLs
	if len(urls) == 0 {
		return nil, errors.New("the 'origin' remote has no URL")
	}

	return findRemote(urls[0])
}

func findRemote(url string) (*Remote, error) {
	slug, err := findSlug(url)
	if err != nil {
		return nil, err
	}

	matches := strings.Split(slug, "/")
	if len(matches) != 2 {
		return nil, errors.New("splitting '" + slug + "' into owner and name failed")
	}

	return &Remote{
		Owner: matches[0],
		Name:  strings.TrimSuffix(matches[1], ".git"),
	}, nil
}

func findSlug(url string) (string, error) {
	for _, regex := range githubRemotePatterns {
		if matches := regex.FindStringSubmatch(url); matches != nil {
			return matches[1], nil
		}
	}
	return "", errors.New("unknown git remote: " + url)
}
