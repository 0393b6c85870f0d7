package version

import (
	_ "embed"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// Name is the program name reported in the User-Agent header.
const Name = "quantum-portctl"

// GitInfo holds the git metadata embedded at build time.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = GitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the embedded git metadata.
func GetGitInfo() GitInfo {
	return info
}

// UserAgent returns "quantum-portctl/<tag>", using the short commit when no tag exists.
func UserAgent() string {
	v := info.Tag
	if v == "" || v == "none" {
		v = info.Commit
		if len(v) > 12 {
			v = v[:12]
		}
	}
	if v == "" {
		v = "dev"
	}
	return Name + "/" + v
}
