package scaffold

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/manifest"
	"github.com/agentx-labs/agentinit/internal/platform"
)

// Options tunes a Generate call. The zero value is usable.
type Options struct {
	// Out receives one progress line per created path. Defaults to io.Discard.
	Out io.Writer
	// Now supplies the creation date. Defaults to time.Now.
	Now func() time.Time
	// SkipCheck disables the post-generation document check.
	SkipCheck bool
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	AgentDir    string
	Directories []string // created directories, agent directory first
	Files       []string // artifacts then markers, relative to AgentDir
	Warnings    []string
}

// Generate creates the agent directory described by cfg. Name, platform and
// target absence are checked and every template is rendered before the
// filesystem is touched. A write failure aborts the run and leaves whatever
// was already created in place.
func Generate(cfg *agent.RunConfig, opts Options) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("scaffold: nil run config")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	if err := agent.ValidateName(cfg.Name); err != nil {
		return nil, err
	}
	if _, err := agent.ParsePlatform(string(cfg.Platform)); err != nil {
		return nil, err
	}

	dir := cfg.AgentDir()
	if err := checkAbsent(dir); err != nil {
		return nil, err
	}

	rendered, err := Render(cfg, now())
	if err != nil {
		return nil, err
	}

	log.Debug("generating agent", "name", cfg.Name, "platform", cfg.Platform, "dir", dir)

	result := &Result{AgentDir: dir}

	result.Directories, err = buildDirectories(out, cfg.OutputDir, dir)
	if err != nil {
		return nil, err
	}

	for _, rel := range agent.Artifacts {
		p := agent.Join(dir, rel)
		log.Debug("writing artifact", "path", p, "bytes", len(rendered[rel]))
		if err := platform.WriteFileAtomic(p, rendered[rel], FilePerm); err != nil {
			return nil, agent.WriteError(p, err)
		}
		result.Files = append(result.Files, rel)
		reportCreated(out, p)
	}

	markers, err := writeMarkers(out, dir)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, markers...)

	if !opts.SkipCheck {
		result.Warnings = check(dir)
	}
	return result, nil
}

// check validates the generated documents; problems become warnings.
func check(dir string) []string {
	res, err := manifest.ValidateAgentDir(dir)
	if err != nil {
		log.Debug("post-generation check failed", "err", err)
		return []string{"Could not validate generated documents: " + err.Error()}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}
