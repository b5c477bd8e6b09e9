package paths

import (
	"strings"

	"github.com/arthur-debert/robe/pkg/errors"
)

// ValidateTargetName checks that a target name can be used as a directory
// under the storage root
func ValidateTargetName(name string) error {
	return validateName("target", name)
}

// ValidateProfileName checks that a profile name can be stored next to the
// target metadata
func ValidateProfileName(name string) error {
	if err := validateName("profile", name); err != nil {
		return err
	}
	if name == MetaFileName {
		return errors.Newf(errors.ErrInvalidInput, "profile name cannot be %s", MetaFileName)
	}
	return nil
}

func validateName(kind, name string) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", kind)
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot contain path separators", kind)
	}

	if name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be '.' or '..'", kind)
	}

	if strings.HasPrefix(name, ".") {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot start with '.'", kind)
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(name, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"%s name contains invalid characters: %s", kind, invalidChars)
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput,
				"%s name contains control characters", kind)
		}
	}

	return nil
}
