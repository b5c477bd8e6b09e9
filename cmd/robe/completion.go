package robe

import (
	"os"
	"strings"

	"github.com/arthur-debert/robe/pkg/commands"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// refCompletion completes target names and, once a target and a slash were
// typed, that target's profiles
func (o *rootOptions) refCompletion(withProfiles bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		storage, err := o.storageRoot()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		if withProfiles {
			if target, _, ok := strings.Cut(toComplete, "/"); ok {
				return profileCompletions(storage, target)
			}
		}

		result, err := commands.List(commands.ListOptions{StorageRoot: storage})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, target := range result.Targets {
			if withProfiles {
				names = append(names, target.Name+"/")
			} else {
				names = append(names, target.Name)
			}
		}

		if withProfiles {
			return names, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func profileCompletions(storage, target string) ([]string, cobra.ShellCompDirective) {
	result, err := commands.List(commands.ListOptions{StorageRoot: storage, Target: target})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var refs []string
	for _, profile := range result.Profiles {
		refs = append(refs, target+"/"+profile.Name)
	}
	return refs, cobra.ShellCompDirectiveNoFileComp
}

// inputIsTerminal reports whether the command reads from an interactive
// terminal, which the removal prompt needs
func inputIsTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
