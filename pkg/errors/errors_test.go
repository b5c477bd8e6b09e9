// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code matching and user-facing rendering

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/robe/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "target_not_found_error",
			code:    errors.ErrTargetNotFound,
			message: "Target tmux not found.",
			wantStr: "[TARGET_NOT_FOUND] Target tmux not found.",
		},
		{
			name:    "usage_error",
			code:    errors.ErrUsage,
			message: "Usage: robe use <target>/<profile>",
			wantStr: "[USAGE] Usage: robe use <target>/<profile>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "Profile %s/%s already exists.", "tmux", "work")
	if err.Message != "Profile tmux/work already exists." {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk exploded")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "failed to write profile")

		if err.Code != errors.ErrFileWrite {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileWrite)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_WRITE] failed to write profile: disk exploded"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error")
		if err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrProfileNotFound, "not found").
		WithDetail("target", "tmux").
		WithDetail("profile", "work")

	if err.Details["target"] != "tmux" {
		t.Errorf("WithDetail() target = %v", err.Details["target"])
	}
	if err.Details["profile"] != "work" {
		t.Errorf("WithDetail() profile = %v", err.Details["profile"])
	}

	details := errors.GetErrorDetails(fmt.Errorf("context: %w", err))
	if details["target"] != "tmux" {
		t.Errorf("GetErrorDetails() through wrapping = %v", details)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrAlreadyExists, "error 1")
	err2 := errors.New(errors.ErrAlreadyExists, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with RobeError")
		}
	})

	t.Run("specific_not_found_matches_generic", func(t *testing.T) {
		specific := errors.New(errors.ErrProfileNotFound, "Profile tmux/x not found.")
		generic := errors.New(errors.ErrNotFound, "")
		if !stderrors.Is(specific, generic) {
			t.Error("profile not found should match the generic not found code")
		}
		if stderrors.Is(generic, specific) {
			t.Error("generic not found should not match a specific code")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotRegistered, "not registered"),
			code:     errors.ErrNotRegistered,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotRegistered, "not registered"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      fmt.Errorf("outer: %w", errors.New(errors.ErrSymlinkRejected, "symlink")),
			code:     errors.ErrSymlinkRejected,
			expected: true,
		},
		{
			name:     "non_robe_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "robe_error",
			err:      errors.New(errors.ErrTargetNotFound, "target not found"),
			expected: errors.ErrTargetNotFound,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "plain_error",
			err:  stderrors.New("boom"),
			want: "boom",
		},
		{
			name: "coded_error_hides_code",
			err:  errors.New(errors.ErrTargetNotFound, "Target tmux not found."),
			want: "Target tmux not found.",
		},
		{
			name: "wrapped_chain",
			err: errors.Wrap(
				errors.Wrap(stderrors.New("permission denied"), errors.ErrFileAccess, "cannot read /etc/x"),
				errors.ErrFileWrite, "failed to save profile tmux/work"),
			want: "failed to save profile tmux/work: cannot read /etc/x: permission denied",
		},
		{
			name: "usage_error_gets_hint",
			err:  errors.New(errors.ErrUsage, "Usage: robe use <target>/<profile>"),
			want: "Wrong usage. Usage: robe use <target>/<profile>\nUse `robe -h` for help.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
