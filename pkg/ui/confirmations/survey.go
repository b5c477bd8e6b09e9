// Package confirmations asks the user to approve destructive operations.
package confirmations

import (
	stderrors "errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/types"
)

// askOne is replaced in tests
var askOne = survey.AskOne

// ConfirmRemoval asks whether a whole target and its profiles may be
// deleted. An interrupted prompt counts as a refusal.
func ConfirmRemoval(ref types.Ref) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Remove target %s and all of its profiles?", ref.Target),
		Default: false,
	}

	if err := askOne(prompt, &confirmed); err != nil {
		if stderrors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrInternal, "confirmation prompt failed")
	}
	return confirmed, nil
}
