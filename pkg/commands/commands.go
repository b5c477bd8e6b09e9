package commands

import (
	"context"

	"github.com/arthur-debert/robe/pkg/commands/add"
	"github.com/arthur-debert/robe/pkg/commands/edit"
	"github.com/arthur-debert/robe/pkg/commands/list"
	"github.com/arthur-debert/robe/pkg/commands/rm"
	"github.com/arthur-debert/robe/pkg/commands/status"
	"github.com/arthur-debert/robe/pkg/commands/use"
	"github.com/arthur-debert/robe/pkg/commands/view"
	"github.com/arthur-debert/robe/pkg/types"
)

// Re-export all command types and functions so the CLI depends on a single
// package

// AddOptions holds options for the add command.
type AddOptions = add.AddOptions

// Add saves the target's real path (or a newly registered path) as a profile.
func Add(opts AddOptions) (*types.AddResult, error) {
	return add.Add(opts)
}

// UseOptions holds options for the use command.
type UseOptions = use.UseOptions

// Use mirrors a stored profile over the target's real path.
func Use(opts UseOptions) (*types.UseResult, error) {
	return use.Use(opts)
}

// ViewOptions holds options for the view command.
type ViewOptions = view.ViewOptions

// View reads the real path or a stored profile.
func View(opts ViewOptions) (*types.ViewResult, error) {
	return view.View(opts)
}

// EditOptions holds options for the edit command.
type EditOptions = edit.EditOptions

// Edit opens the real path or a stored profile in an editor.
func Edit(opts EditOptions) (*types.EditResult, error) {
	return edit.Edit(opts)
}

// RemoveOptions holds options for the rm command.
type RemoveOptions = rm.RemoveOptions

// Remove deletes a profile, or the whole target when no profile is named.
func Remove(opts RemoveOptions) (*types.RemoveResult, error) {
	return rm.Remove(opts)
}

// ListOptions holds options for the list command.
type ListOptions = list.ListOptions

// List returns the registered targets or one target's profiles.
func List(opts ListOptions) (*types.ListResult, error) {
	return list.List(opts)
}

// StatusOptions holds options for the status command.
type StatusOptions = status.StatusOptions

// Status compares real paths with their last activated profiles.
func Status(ctx context.Context, opts StatusOptions) (*types.StatusResult, error) {
	return status.Status(ctx, opts)
}
