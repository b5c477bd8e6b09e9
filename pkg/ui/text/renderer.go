// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/types"
)

// Separator frames file content in annotated views
const Separator = "------------------------------"

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *types.ListResult:
		out = FormatList(v)
	case *types.StatusResult:
		out = strings.Join(StatusLines(v), "\n") + "\n"
	case *types.ViewResult:
		out = FormatView(v)
	case *types.AddResult:
		out = FormatAdd(v) + "\n"
	case *types.UseResult:
		out = fmt.Sprintf("Activated %s at %s\n", v.Ref, v.RealPath)
	case *types.RemoveResult:
		out = fmt.Sprintf("Removed %s\n", v.Ref)
	case *types.EditResult:
		return nil
	default:
		out = fmt.Sprintf("%+v\n", result)
	}
	_, err := io.WriteString(r.output, out)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "robe: %s\n", errors.UserMessage(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// FormatList renders the target list or one target's profiles
func FormatList(result *types.ListResult) string {
	var b strings.Builder
	if result.Target == "" {
		if len(result.Targets) == 0 {
			return "No targets registered.\n"
		}
		b.WriteString("Registered targets:\n")
		for _, t := range result.Targets {
			fmt.Fprintf(&b, "  - %s\n", t.Name)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Robes for %s:\n", result.Target)
	for _, p := range result.Profiles {
		if p.Active {
			fmt.Fprintf(&b, "  - %s (active)\n", p.Name)
			continue
		}
		fmt.Fprintf(&b, "  - %s\n", p.Name)
	}
	return b.String()
}

// StatusLines renders one line per target, names padded to a common
// width, sorted
func StatusLines(result *types.StatusResult) []string {
	width := NameWidth(result)
	lines := make([]string, 0, len(result.Targets))
	for _, s := range result.Targets {
		lines = append(lines, fmt.Sprintf("%-*s → %s%s", width, s.Name, StatusProfile(s), StatusSuffix(s)))
	}
	sort.Strings(lines)
	return lines
}

// NameWidth returns the length of the longest target name
func NameWidth(result *types.StatusResult) int {
	width := 0
	for _, s := range result.Targets {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}
	return width
}

// StatusProfile returns the profile column of a status line
func StatusProfile(s types.TargetStatus) string {
	if s.State == types.StateNone || s.LastActivatedProfile == "" {
		return "(none)"
	}
	return s.LastActivatedProfile
}

// StatusSuffix returns the drift marker of a status line, if any
func StatusSuffix(s types.TargetStatus) string {
	switch s.State {
	case types.StateModified:
		return " * modified"
	case types.StateMissing:
		return " * missing"
	default:
		return ""
	}
}

// FormatView renders a viewed file or directory
func FormatView(result *types.ViewResult) string {
	var b strings.Builder

	if result.Raw {
		if result.Kind == types.KindDir {
			for _, entry := range result.Entries {
				b.WriteString(entry + "\n")
			}
			return b.String()
		}
		return string(result.Content)
	}

	if result.Kind == types.KindDir {
		fmt.Fprintf(&b, "%s: %s (directory)\n", result.Ref, result.Path)
		for _, entry := range result.Entries {
			fmt.Fprintf(&b, "  %s\n", entry)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%s: %s\n", result.Ref, result.Path)
	b.WriteString(Separator + "\n")
	b.Write(result.Content)
	if len(result.Content) > 0 && result.Content[len(result.Content)-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString(Separator + "\n")
	return b.String()
}

// FormatAdd describes what add did
func FormatAdd(result *types.AddResult) string {
	if result.Registered {
		return fmt.Sprintf("Registered %s at %s and saved %s", result.Ref.Target, result.RealPath, result.Ref)
	}
	if result.Overwrote {
		return fmt.Sprintf("Updated %s from %s", result.Ref, result.RealPath)
	}
	return fmt.Sprintf("Saved %s from %s", result.Ref, result.RealPath)
}
