// Package listsource resolves curated problem lists: a slug-per-line
// file on disk, optionally kept in a git repository that is cloned or
// pulled before reading.
package listsource

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/conorfennell/ankigen/internal/domain"
)

// LoadFile reads a handle list from a file. One slug per line; blank
// lines and '#' comments are ignored.
func LoadFile(path string) ([]domain.Handle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads a handle list from an io.Reader.
func Load(r io.Reader) ([]domain.Handle, error) {
	scanner := bufio.NewScanner(r)
	var handles []domain.Handle

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		handles = append(handles, domain.Handle(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return handles, nil
}

// Filter turns a handle list into the membership set the provider's
// list filter expects.
func Filter(handles []domain.Handle) map[domain.Handle]bool {
	if len(handles) == 0 {
		return nil
	}
	set := make(map[domain.Handle]bool, len(handles))
	for _, h := range handles {
		set[h] = true
	}
	return set
}

// Sync clones the list repository if it doesn't exist at localPath, or
// pulls the latest changes if it does.
func Sync(url, localPath string) error {
	_, err := os.Stat(localPath)
	if os.IsNotExist(err) {
		slog.Info("Cloning list repository", "url", url, "path", localPath)
		if _, err := git.PlainClone(localPath, false, &git.CloneOptions{URL: url}); err != nil {
			return fmt.Errorf("failed to clone list repo %s: %w", url, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", localPath, err)
	}

	slog.Info("Pulling list repository", "path", localPath)
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return fmt.Errorf("failed to open existing repo at %s: %w", localPath, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree for repo at %s: %w", localPath, err)
	}
	err = worktree.Pull(&git.PullOptions{RemoteName: "origin"})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("failed to pull repo at %s: %w", localPath, err)
	}
	return nil
}

// LocalPath maps a list repository URL to its checkout directory under
// baseDir. Handles both https and scp-style git URLs.
func LocalPath(baseDir, repoURL string) (string, error) {
	parsed, err := url.Parse(repoURL)
	if err == nil && (parsed.Scheme == "https" || parsed.Scheme == "http") {
		return filepath.Join(baseDir, parsed.Host, strings.TrimSuffix(parsed.Path, ".git")), nil
	}

	if strings.Contains(repoURL, "@") {
		parts := strings.Split(repoURL, ":")
		if len(parts) == 2 {
			hostAndUser := strings.Split(parts[0], "@")
			if len(hostAndUser) == 2 {
				return filepath.Join(baseDir, hostAndUser[1], strings.TrimSuffix(parts[1], ".git")), nil
			}
		}
	}
	return "", fmt.Errorf("could not parse git URL: %s", repoURL)
}
