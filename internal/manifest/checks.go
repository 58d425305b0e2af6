package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Check names reported in ValidationIssue.Keyword for non-schema checks.
const (
	CheckSemver     = "semver"
	CheckTransition = "transition"
	CheckTerminal   = "terminal"
	CheckDuplicate  = "duplicate"
	CheckFragment   = "fragment"
	CheckMissing    = "missing"
	CheckMismatch   = "mismatch"
)

// CheckVersion reports an issue unless v parses as a semantic version.
// Short forms such as "1.0" are accepted.
func CheckVersion(v string) []ValidationIssue {
	if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err != nil {
		return []ValidationIssue{{
			Path:    "/version",
			Message: fmt.Sprintf("version %q is not a semantic version: %v", v, err),
			Keyword: CheckSemver,
		}}
	}
	return nil
}

// CheckWorkflows verifies the step graph of every workflow: ids are unique,
// every transition targets an existing step, terminal steps have no
// transitions, non-terminal steps have a success transition, and at least
// one terminal step exists.
func CheckWorkflows(doc *WorkflowsDocument) []ValidationIssue {
	var issues []ValidationIssue
	for wi, w := range doc.Workflows {
		base := fmt.Sprintf("/workflows/%d", wi)

		ids := make(map[string]bool, len(w.Steps))
		for si, s := range w.Steps {
			if ids[s.ID] {
				issues = append(issues, ValidationIssue{
					Path:    fmt.Sprintf("%s/steps/%d/id", base, si),
					Message: fmt.Sprintf("workflow %q: duplicate step id %q", w.Name, s.ID),
					Keyword: CheckDuplicate,
				})
			}
			ids[s.ID] = true
		}

		terminals := 0
		for si, s := range w.Steps {
			stepPath := fmt.Sprintf("%s/steps/%d", base, si)
			if s.IsTerminal {
				terminals++
				if s.OnSuccess != "" || s.OnFailure != "" {
					issues = append(issues, ValidationIssue{
						Path:    stepPath,
						Message: fmt.Sprintf("workflow %q: terminal step %q must not declare transitions", w.Name, s.ID),
						Keyword: CheckTerminal,
					})
				}
				continue
			}
			if s.OnSuccess == "" {
				issues = append(issues, ValidationIssue{
					Path:    stepPath,
					Message: fmt.Sprintf("workflow %q: step %q has no on_success and is not terminal", w.Name, s.ID),
					Keyword: CheckTerminal,
				})
			}
			for _, tr := range [][2]string{{"on_success", s.OnSuccess}, {"on_failure", s.OnFailure}} {
				if tr[1] != "" && !ids[tr[1]] {
					issues = append(issues, ValidationIssue{
						Path:    stepPath + "/" + tr[0],
						Message: fmt.Sprintf("workflow %q: step %q transitions to unknown step %q", w.Name, s.ID, tr[1]),
						Keyword: CheckTransition,
					})
				}
			}
		}

		if terminals == 0 {
			issues = append(issues, ValidationIssue{
				Path:    base + "/steps",
				Message: fmt.Sprintf("workflow %q has no terminal step", w.Name),
				Keyword: CheckTerminal,
			})
		}
	}
	return issues
}

// CheckPlatformConfig verifies that exactly one platform fragment is present
// and that it belongs to the declared platform.
func CheckPlatformConfig(cfg *PlatformConfig) []ValidationIssue {
	fragments := cfg.Fragments()
	want := FragmentKey(cfg.Platform)

	switch {
	case len(fragments) == 0:
		return []ValidationIssue{{
			Message: fmt.Sprintf("no platform fragment found; expected %q", want),
			Keyword: CheckFragment,
		}}
	case len(fragments) > 1:
		return []ValidationIssue{{
			Message: fmt.Sprintf("exactly one platform fragment expected, found %s", strings.Join(fragments, ", ")),
			Keyword: CheckFragment,
		}}
	case fragments[0] != want:
		return []ValidationIssue{{
			Path:    "/" + fragments[0],
			Message: fmt.Sprintf("fragment %q does not match platform %q", fragments[0], cfg.Platform),
			Keyword: CheckMismatch,
		}}
	}
	return nil
}

// FragmentKey maps a platform literal to the top-level key of its fragment.
func FragmentKey(platform string) string {
	return strings.ReplaceAll(platform, "-", "_")
}
