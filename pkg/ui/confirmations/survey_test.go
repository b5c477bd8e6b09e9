package confirmations

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	roberrors "github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAsk(t *testing.T, answer bool, err error) *string {
	t.Helper()
	var message string
	orig := askOne
	askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		message = p.(*survey.Confirm).Message
		if err != nil {
			return err
		}
		*(response.(*bool)) = answer
		return nil
	}
	t.Cleanup(func() { askOne = orig })
	return &message
}

func TestConfirmRemoval(t *testing.T) {
	message := stubAsk(t, true, nil)

	ok, err := ConfirmRemoval(types.Ref{Target: "tmux"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Remove target tmux and all of its profiles?", *message)
}

func TestConfirmRemoval_Declined(t *testing.T) {
	stubAsk(t, false, nil)

	ok, err := ConfirmRemoval(types.Ref{Target: "tmux"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirmRemoval_Interrupted(t *testing.T) {
	stubAsk(t, false, terminal.InterruptErr)

	ok, err := ConfirmRemoval(types.Ref{Target: "tmux"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirmRemoval_Failure(t *testing.T) {
	stubAsk(t, false, errors.New("no tty"))

	_, err := ConfirmRemoval(types.Ref{Target: "tmux"})
	require.Error(t, err)
	assert.True(t, roberrors.IsErrorCode(err, roberrors.ErrInternal))
}
