// Package terminal provides rich terminal output using lipgloss styles,
// with file views highlighted through glamour
package terminal

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/style"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/arthur-debert/robe/pkg/ui/text"
	"github.com/charmbracelet/glamour"
)

// Highlighter turns file content into highlighted terminal text
type Highlighter func(content, language string) (string, error)

// Renderer provides rich terminal output with colors and styling
type Renderer struct {
	output    io.Writer
	highlight Highlighter
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output, highlight: GlamourHighlight}, nil
}

// WithHighlighter replaces the code highlighter used for file views
func (r *Renderer) WithHighlighter(h Highlighter) *Renderer {
	r.highlight = h
	return r
}

// RenderResult renders any result type with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *types.ListResult:
		out = r.list(v)
	case *types.StatusResult:
		out = r.status(v)
	case *types.ViewResult:
		if v.Raw {
			out = text.FormatView(v)
		} else {
			out = r.view(v)
		}
	case *types.AddResult:
		out = style.SuccessStyle.Render("✓ ") + text.FormatAdd(v) + "\n"
	case *types.UseResult:
		out = style.SuccessStyle.Render("✓ ") + fmt.Sprintf("Activated %s at %s\n",
			style.ProfileStyle.Render(v.Ref.String()), style.PathStyle.Render(v.RealPath))
	case *types.RemoveResult:
		out = style.SuccessStyle.Render("✓ ") + fmt.Sprintf("Removed %s\n", style.ProfileStyle.Render(v.Ref.String()))
	case *types.EditResult:
		return nil
	default:
		out = fmt.Sprintf("%+v\n", result)
	}
	_, err := io.WriteString(r.output, out)
	return err
}

// RenderError renders an error with styling
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", style.ErrorStyle.Render("robe:"), errors.UserMessage(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) list(result *types.ListResult) string {
	var b strings.Builder
	if result.Target == "" {
		if len(result.Targets) == 0 {
			return style.MutedStyle.Render("No targets registered.") + "\n"
		}
		b.WriteString(style.TitleStyle.Render("Registered targets") + "\n")
		for _, t := range result.Targets {
			line := fmt.Sprintf("• %s %s %s",
				style.TargetStyle.Render(t.Name),
				style.PathStyle.Render(t.RealPath),
				style.MutedStyle.Render(fmt.Sprintf("(%d profiles)", t.Profiles)))
			b.WriteString(style.ListItemStyle.Render(line) + "\n")
		}
		return b.String()
	}

	b.WriteString(style.TitleStyle.Render("Robes for "+result.Target) + "\n")
	if len(result.Profiles) == 0 {
		b.WriteString(style.ListItemStyle.Render(style.MutedStyle.Render("(none)")) + "\n")
	}
	for _, p := range result.Profiles {
		line := "• " + style.ProfileStyle.Render(p.Name)
		if p.Active {
			line += " " + style.SuccessStyle.Render("(active)")
		}
		b.WriteString(style.ListItemStyle.Render(line) + "\n")
	}
	return b.String()
}

func (r *Renderer) status(result *types.StatusResult) string {
	targets := append([]types.TargetStatus(nil), result.Targets...)
	sort.Slice(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })

	width := text.NameWidth(result)
	var b strings.Builder
	for _, s := range targets {
		name := fmt.Sprintf("%-*s", width, s.Name)
		profile := text.StatusProfile(s)
		profileStyle := style.ProfileStyle
		if s.State == types.StateNone {
			profileStyle = style.MutedStyle
		}
		fmt.Fprintf(&b, "%s → %s%s\n",
			style.TargetStyle.Render(name),
			profileStyle.Render(profile),
			style.StateStyle(s.State).Render(text.StatusSuffix(s)))
	}
	return b.String()
}

func (r *Renderer) view(result *types.ViewResult) string {
	var b strings.Builder
	header := style.TitleStyle.Render(result.Ref.String()) + " " + style.PathStyle.Render(result.Path)

	if result.Kind == types.KindDir {
		b.WriteString(header + " " + style.MutedStyle.Render("(directory)") + "\n")
		for _, entry := range result.Entries {
			if strings.HasSuffix(entry, "/") {
				entry = style.TargetStyle.Render(entry)
			}
			b.WriteString(style.ListItemStyle.Render(entry) + "\n")
		}
		return b.String()
	}

	b.WriteString(header + "\n")
	content := string(result.Content)
	if r.highlight != nil {
		if rendered, err := r.highlight(content, Language(result.Path)); err == nil {
			b.WriteString(rendered)
			return b.String()
		}
	}
	b.WriteString(style.BoxStyle.Render(strings.TrimRight(content, "\n")) + "\n")
	return b.String()
}

// Language guesses a code block language from a file name
func Language(path string) string {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, "rc") && strings.HasPrefix(base, "."):
		return "sh"
	case base == "Makefile":
		return "make"
	}
	return strings.TrimPrefix(filepath.Ext(base), ".")
}

// GlamourHighlight renders content as a fenced markdown code block
func GlamourHighlight(content, language string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(CodeBlock(content, language))
}

// CodeBlock wraps content in a markdown fence longer than any backtick run
// inside it
func CodeBlock(content, language string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", max(3, longest+1))

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return fence + language + "\n" + content + fence + "\n"
}
