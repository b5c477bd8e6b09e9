package types

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/robe/pkg/errors"
)

// Ref is a parsed `<target>[/<profile>]` command argument.
type Ref struct {
	Target  string
	Profile string
}

// ParseRef splits a command argument into target and optional profile.
// A trailing slash (left behind by shell completion) is ignored.
func ParseRef(arg string) (Ref, error) {
	trimmed := strings.TrimRight(arg, "/")
	if trimmed == "" {
		return Ref{}, errors.Newf(errors.ErrInvalidInput, "invalid reference %q", arg)
	}

	parts := strings.Split(trimmed, "/")
	switch len(parts) {
	case 1:
		return Ref{Target: parts[0]}, nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return Ref{}, errors.Newf(errors.ErrInvalidInput, "invalid reference %q", arg)
		}
		return Ref{Target: parts[0], Profile: parts[1]}, nil
	default:
		return Ref{}, errors.Newf(errors.ErrInvalidInput, "invalid reference %q", arg)
	}
}

// HasProfile reports whether the reference names a profile.
func (r Ref) HasProfile() bool {
	return r.Profile != ""
}

// String returns the reference in `<target>[/<profile>]` form.
func (r Ref) String() string {
	if r.Profile == "" {
		return r.Target
	}
	return fmt.Sprintf("%s/%s", r.Target, r.Profile)
}
