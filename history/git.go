package history

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// gitLogFormat: hash, unix timestamp, subject, and parent hashes per commit,
// followed by --numstat lines for the magnitude.
const gitLogFormat = "--pretty=format:@@%H|%at|%s|%P"

// ReadGitLog mines the repository at dir for commits within the last days
// and returns them as normalized events. Magnitude is lines added plus
// removed from numstat.
func ReadGitLog(dir string, days int) ([]Event, error) {
	since := fmt.Sprintf("--since=%d.days", days)
	cmd := exec.Command("git", "log", gitLogFormat, "--numstat", since)
	cmd.Dir = dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("git log in %s: %s", dir, msg)
	}

	commits, err := parseGitLog(out.Bytes())
	if err != nil {
		return nil, err
	}
	return FromCommits(commits), nil
}

func parseGitLog(raw []byte) ([]Commit, error) {
	var commits []Commit
	var current *Commit

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "@@"); ok {
			if current != nil {
				commits = append(commits, *current)
			}
			c, err := parseCommitHeader(rest)
			if err != nil {
				return nil, err
			}
			current = &c
			continue
		}

		// numstat line: added<TAB>removed<TAB>path; binary files show "-".
		if current == nil {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		added, _ := strconv.Atoi(fields[0])
		removed, _ := strconv.Atoi(fields[1])
		current.Insertions += uint(added)
		current.Deletions += uint(removed)
	}
	if current != nil {
		commits = append(commits, *current)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan git log: %w", err)
	}
	return commits, nil
}

func parseCommitHeader(line string) (Commit, error) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) != 4 {
		return Commit{}, fmt.Errorf("malformed log line %q", line)
	}
	unix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Commit{}, fmt.Errorf("timestamp in %q: %w", line, err)
	}
	// Two or more parent hashes marks a merge.
	parents := strings.Fields(parts[3])
	return Commit{
		Hash:    parts[0],
		Date:    time.Unix(unix, 0).UTC(),
		Message: parts[2],
		IsMerge: len(parents) > 1,
	}, nil
}
