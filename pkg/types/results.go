package types

// ListResult holds the result of the 'list' command. Exactly one of
// Targets or Profiles is populated depending on whether a target was named.
type ListResult struct {
	Target   string        `json:"target,omitempty" yaml:"target,omitempty"`
	Targets  []TargetInfo  `json:"targets,omitempty" yaml:"targets,omitempty"`
	Profiles []ProfileInfo `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// TargetInfo contains summary information about a single target.
type TargetInfo struct {
	Name     string `json:"name" yaml:"name"`
	RealPath string `json:"realPath" yaml:"real_path"`
	Profiles int    `json:"profiles" yaml:"profiles"`
}

// ProfileInfo contains summary information about a single profile.
type ProfileInfo struct {
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
}

// TargetState is the outcome of comparing a target's real path with its
// last activated profile.
type TargetState string

const (
	// StateClean means the real path matches the last activated profile
	StateClean TargetState = "clean"
	// StateModified means the real path differs from the last activated profile
	StateModified TargetState = "modified"
	// StateMissing means the real path no longer exists
	StateMissing TargetState = "missing"
	// StateNone means no profile was ever activated for the target
	StateNone TargetState = "none"
)

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	Targets []TargetStatus `json:"targets" yaml:"targets"`
}

// TargetStatus is the status line for one target.
type TargetStatus struct {
	Name                 string      `json:"name" yaml:"name"`
	RealPath             string      `json:"realPath" yaml:"real_path"`
	LastActivatedProfile string      `json:"lastActivatedProfile,omitempty" yaml:"last_activated_profile,omitempty"`
	State                TargetState `json:"state" yaml:"state"`
}

// Modified reports whether the target drifted from its active profile.
func (s TargetStatus) Modified() bool {
	return s.State == StateModified || s.State == StateMissing
}

// EntryKind distinguishes files from directories in results.
type EntryKind string

const (
	// KindFile is a regular file
	KindFile EntryKind = "file"
	// KindDir is a directory
	KindDir EntryKind = "dir"
)

// ViewResult holds what 'view' resolved and read.
type ViewResult struct {
	Ref     Ref       `json:"-" yaml:"-"`
	Raw     bool      `json:"-" yaml:"-"`
	Path    string    `json:"path" yaml:"path"`
	Kind    EntryKind `json:"kind" yaml:"kind"`
	Content []byte    `json:"-" yaml:"-"`
	Entries []string  `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// AddResult describes what 'add' did.
type AddResult struct {
	Ref        Ref    `json:"-" yaml:"-"`
	RealPath   string `json:"realPath" yaml:"real_path"`
	Registered bool   `json:"registered" yaml:"registered"`
	Overwrote  bool   `json:"overwrote" yaml:"overwrote"`
}

// RemoveResult describes what 'rm' deleted.
type RemoveResult struct {
	Ref     Ref    `json:"-" yaml:"-"`
	Removed string `json:"removed" yaml:"removed"`
}

// UseResult describes which profile 'use' activated.
type UseResult struct {
	Ref      Ref    `json:"-" yaml:"-"`
	RealPath string `json:"realPath" yaml:"real_path"`
}

// EditResult describes the file 'edit' opened.
type EditResult struct {
	Ref    Ref      `json:"-" yaml:"-"`
	Path   string   `json:"path" yaml:"path"`
	Editor []string `json:"editor" yaml:"editor"`
}
