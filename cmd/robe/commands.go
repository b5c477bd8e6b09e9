package robe

import (
	"github.com/arthur-debert/robe/internal/version"
	"github.com/arthur-debert/robe/pkg/commands"
	"github.com/arthur-debert/robe/pkg/config"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/paths"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/arthur-debert/robe/pkg/ui"
	"github.com/arthur-debert/robe/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions carries the global flags and the settings they resolve to
type rootOptions struct {
	verbosity int
	storage   string
	settings  *config.Settings
	loadedFor string // value of --storage the settings were loaded with
}

// load reads the settings once per invocation. The --storage flag takes
// precedence over the settings file and the environment.
func (o *rootOptions) load() (*config.Settings, error) {
	if o.settings != nil && o.loadedFor == o.storage {
		return o.settings, nil
	}
	loadOpts := config.LoadOptions{}
	if o.storage != "" {
		loadOpts.Overrides = map[string]interface{}{config.KeyDataLocation: o.storage}
	}
	settings, err := config.Load(loadOpts)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadSettings)
	}
	o.settings = settings
	o.loadedFor = o.storage
	return settings, nil
}

func (o *rootOptions) storageRoot() (string, error) {
	settings, err := o.load()
	if err != nil {
		return "", err
	}
	return settings.DataLocation, nil
}

// storageLocation is the storage root shown in help. Broken settings fall
// back to the built-in ones so help still renders.
func (o *rootOptions) storageLocation() string {
	settings, err := o.load()
	if err != nil {
		settings = config.Default()
	}
	if settings.DataLocation == "" {
		return paths.DefaultStorageRoot()
	}
	return settings.DataLocation
}

func (o *rootOptions) configLocation() string {
	return paths.ConfigFilePath()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	// Initialize custom template formatting functions
	initTemplateFormatting(opts)

	rootCmd := &cobra.Command{
		Use:     "robe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
			log.Debug().
				Str("version", version.Version).
				Str("commit", version.Commit).
				Str("date", version.Date).
				Msg("Build information")
			_, err := opts.load()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags. --verbose has no shorthand so -v stays the version flag.
	rootCmd.PersistentFlags().CountVar(&opts.verbosity, "verbose", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.storage, "storage", "", MsgFlagStorage)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, MsgErrInvalidFlag)
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newUseCmd(opts))
	rootCmd.AddCommand(newViewCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))

	return rootCmd
}

// refArgs accepts exactly one <target>[/<profile>] argument
func refArgs(expected string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.Newf(errors.ErrUsage, MsgErrArgCount, cmd.Name(), expected)
		}
		return nil
	}
}

// optionalTargetArgs accepts zero or one target name
func optionalTargetArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.Newf(errors.ErrUsage, MsgErrArgCount, cmd.Name(), MsgArgOptionalTarget)
	}
	return nil
}

// parseRef parses a command argument, requiring a profile when asked to
func parseRef(cmd *cobra.Command, arg string, requireProfile bool) (types.Ref, error) {
	ref, err := types.ParseRef(arg)
	if err != nil {
		return types.Ref{}, err
	}
	if requireProfile && !ref.HasProfile() {
		return types.Ref{}, errors.Newf(errors.ErrUsage, MsgErrNeedsProfile, cmd.Name())
	}
	return ref, nil
}

// parseTarget parses the argument of commands that act on a whole target
func parseTarget(cmd *cobra.Command, arg string) (string, error) {
	ref, err := types.ParseRef(arg)
	if err != nil {
		return "", err
	}
	if ref.HasProfile() {
		return "", errors.Newf(errors.ErrUsage, MsgErrTargetOnly, cmd.Name(), ref)
	}
	return ref.Target, nil
}

// render writes a command result to the command's output
func render(cmd *cobra.Command, format ui.Format, result interface{}) error {
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// outputFormat reads the --output flag of list and status
func outputFormat(cmd *cobra.Command) (ui.Format, error) {
	value, _ := cmd.Flags().GetString("output")
	return ui.ParseFormat(value)
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		register string
		force    bool
	)

	cmd := &cobra.Command{
		Use:               "add <target>/<profile>",
		Short:             MsgAddShort,
		Long:              MsgAddLong,
		Example:           MsgAddExample,
		GroupID:           "core",
		Args:              refArgs(MsgArgRef),
		ValidArgsFunction: opts.refCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(cmd, args[0], true)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			result, err := commands.Add(commands.AddOptions{
				StorageRoot:  storage,
				Target:       ref.Target,
				Profile:      ref.Profile,
				RegisterPath: register,
				Force:        force,
			})
			if err != nil {
				return err
			}
			return render(cmd, ui.FormatAuto, result)
		},
	}

	cmd.Flags().StringVarP(&register, "register", "r", "", MsgFlagRegister)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "use <target>/<profile>",
		Short:             MsgUseShort,
		Long:              MsgUseLong,
		Example:           MsgUseExample,
		GroupID:           "core",
		Args:              refArgs(MsgArgRef),
		ValidArgsFunction: opts.refCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(cmd, args[0], true)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			result, err := commands.Use(commands.UseOptions{
				StorageRoot: storage,
				Target:      ref.Target,
				Profile:     ref.Profile,
			})
			if err != nil {
				return err
			}
			return render(cmd, ui.FormatAuto, result)
		},
	}
}

func newViewCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:               "view <target>[/<profile>]",
		Short:             MsgViewShort,
		Example:           MsgViewExample,
		GroupID:           "core",
		Args:              refArgs(MsgArgOptionalRef),
		ValidArgsFunction: opts.refCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(cmd, args[0], false)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			result, err := commands.View(commands.ViewOptions{
				StorageRoot: storage,
				Target:      ref.Target,
				Profile:     ref.Profile,
				Raw:         raw,
			})
			if err != nil {
				return err
			}
			return render(cmd, ui.FormatAuto, result)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)

	return cmd
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "edit <target>[/<profile>]",
		Short:             MsgEditShort,
		Example:           MsgEditExample,
		GroupID:           "core",
		Args:              refArgs(MsgArgOptionalRef),
		ValidArgsFunction: opts.refCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(cmd, args[0], false)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			_, err = commands.Edit(commands.EditOptions{
				StorageRoot: storage,
				Target:      ref.Target,
				Profile:     ref.Profile,
			})
			return err
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "list [target]",
		Aliases:           []string{"ls"},
		Short:             MsgListShort,
		GroupID:           "core",
		Args:              optionalTargetArgs,
		ValidArgsFunction: opts.refCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			listOpts := commands.ListOptions{StorageRoot: storage}
			if len(args) == 1 {
				target, err := parseTarget(cmd, args[0])
				if err != nil {
					return err
				}
				listOpts.Target = target
			}

			result, err := commands.List(listOpts)
			if err != nil {
				return err
			}
			return render(cmd, format, result)
		},
	}

	cmd.Flags().StringP("output", "o", "auto", MsgFlagOutput)

	return cmd
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "rm <target>[/<profile>]",
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		Example:           MsgRemoveExample,
		GroupID:           "core",
		Args:              refArgs(MsgArgOptionalRef),
		ValidArgsFunction: opts.refCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(cmd, args[0], false)
			if err != nil {
				return err
			}
			storage, err := opts.storageRoot()
			if err != nil {
				return err
			}

			removeOpts := commands.RemoveOptions{
				StorageRoot: storage,
				Target:      ref.Target,
				Profile:     ref.Profile,
			}
			if !ref.HasProfile() && !yes {
				if !inputIsTerminal(cmd) {
					return errors.Newf(errors.ErrUsage, MsgErrUnconfirmed, ref.Target)
				}
				removeOpts.Confirm = confirmations.ConfirmRemoval
			}

			result, err := commands.Remove(removeOpts)
			if err != nil {
				return err
			}
			return render(cmd, ui.FormatAuto, result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "status [target]",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		GroupID:           "core",
		Args:              optionalTargetArgs,
		ValidArgsFunction: opts.refCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			settings, err := opts.load()
			if err != nil {
				return err
			}

			statusOpts := commands.StatusOptions{
				StorageRoot: settings.DataLocation,
				Workers:     settings.CompareWorkers,
			}
			if len(args) == 1 {
				target, err := parseTarget(cmd, args[0])
				if err != nil {
					return err
				}
				statusOpts.Target = target
			}

			log.Debug().Str("target", statusOpts.Target).Int("workers", statusOpts.Workers).Msg("Checking status")
			result, err := commands.Status(cmd.Context(), statusOpts)
			if err != nil {
				return err
			}
			return render(cmd, format, result)
		},
	}

	cmd.Flags().StringP("output", "o", "auto", MsgFlagOutput)

	return cmd
}
