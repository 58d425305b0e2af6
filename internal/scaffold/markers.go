package scaffold

import (
	"io"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/platform"
)

// writeMarkers drops an empty marker file into each directory expected to
// stay empty. It returns the marker paths relative to dir.
func writeMarkers(w io.Writer, dir string) ([]string, error) {
	var written []string
	for _, rel := range agent.Markers() {
		p := agent.Join(dir, rel)
		if err := platform.WriteFileAtomic(p, nil, FilePerm); err != nil {
			return written, agent.WriteError(p, err)
		}
		written = append(written, rel)
		reportCreated(w, p)
	}
	return written, nil
}
