package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/agentx-labs/agentinit/internal/agent"
)

// Modes of the directories and files the scaffold creates.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// checkAbsent fails with ErrAlreadyExists if anything exists at dir.
func checkAbsent(dir string) error {
	_, err := os.Lstat(dir)
	switch {
	case err == nil:
		return agent.AlreadyExistsError(dir)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return agent.WriteError(dir, err)
	}
}

// buildDirectories creates dir and its fixed subdirectories, reporting each
// created path to w. dir itself must not exist yet.
func buildDirectories(w io.Writer, outputDir, dir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, DirPerm); err != nil {
		return nil, agent.WriteError(outputDir, err)
	}

	// Mkdir rather than MkdirAll: a directory appearing since checkAbsent
	// must still be refused.
	if err := os.Mkdir(dir, DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, agent.AlreadyExistsError(dir)
		}
		return nil, agent.WriteError(dir, err)
	}
	created := []string{dir}
	reportCreated(w, dir)

	for _, sub := range agent.Subdirectories {
		p := filepath.Join(dir, sub)
		log.Debug("creating directory", "path", p)
		if err := os.MkdirAll(p, DirPerm); err != nil {
			return created, agent.WriteError(p, err)
		}
		created = append(created, p)
		reportCreated(w, p)
	}
	return created, nil
}

func reportCreated(w io.Writer, path string) {
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
}
