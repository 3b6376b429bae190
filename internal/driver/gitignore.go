package driver

import (
	"bytes"
	"os/exec"
)

// filterGitIgnored drops paths that .gitignore rules exclude. One batched
// `git check-ignore --stdin` call covers the whole list; if git is missing
// or fails the list passes through unfiltered, matching the "best effort"
// contract of gitignore support.
func filterGitIgnored(root string, paths []string) []string {
	if len(paths) == 0 {
		return paths
	}
	if _, err := exec.LookPath("git"); err != nil {
		return paths
	}

	var stdin bytes.Buffer
	for _, p := range paths {
		stdin.WriteString(p)
		stdin.WriteByte('\n')
	}

	cmd := exec.Command("git", "-C", root, "check-ignore", "--stdin")
	cmd.Stdin = &stdin
	out, err := cmd.Output()
	if err != nil {
		// Exit status 1 means "nothing ignored"; anything else is a git
		// failure and we keep the full list.
		if ee, ok := err.(*exec.ExitError); !ok || ee.ExitCode() != 1 {
			return paths
		}
	}

	ignored := make(map[string]struct{})
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		if len(line) > 0 {
			ignored[string(line)] = struct{}{}
		}
	}
	if len(ignored) == 0 {
		return paths
	}

	kept := paths[:0]
	for _, p := range paths {
		if _, skip := ignored[p]; !skip {
			kept = append(kept, p)
		}
	}
	return kept
}
