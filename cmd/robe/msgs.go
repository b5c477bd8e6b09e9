package robe

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Switch dotfiles between saved profiles"
	MsgAddShort    = "Save a target's current content as a profile"
	MsgUseShort    = "Activate a saved profile"
	MsgViewShort   = "Show a target or one of its profiles"
	MsgEditShort   = "Open a target or one of its profiles in $EDITOR"
	MsgListShort   = "List targets, or the profiles of one target"
	MsgRemoveShort = "Remove a profile, or a target with all its profiles"
	MsgStatusShort = "Show whether targets still match their active profile"

	// Usage errors
	MsgErrNoCommand      = "No command specified."
	MsgErrArgCount       = "%s expects %s."
	MsgErrNeedsProfile   = "%s needs a <target>/<profile> argument."
	MsgErrTargetOnly     = "%s takes a target name, not the profile %s."
	MsgErrUnconfirmed    = "Refusing to remove target %s without confirmation. Use -y to confirm."
	MsgErrInvalidFlag    = "invalid flag"
	MsgErrLoadSettings   = "failed to load settings"
	MsgLogDisabled       = "(disabled)"
	MsgArgRef            = "<target>/<profile>"
	MsgArgOptionalRef    = "<target>[/<profile>]"
	MsgArgOptionalTarget = "at most one <target>"

	// Flag descriptions
	MsgFlagVerbose  = "Increase log verbosity (--verbose INFO, twice DEBUG, three times TRACE)"
	MsgFlagStorage  = "Storage directory for targets and profiles (overrides data_location)"
	MsgFlagRegister = "Register the target at this file or directory"
	MsgFlagForce    = "Overwrite an existing profile or registration"
	MsgFlagRaw      = "Print content without header or frame"
	MsgFlagYes      = "Remove without asking for confirmation"
	MsgFlagOutput   = "Output format: auto, term, text, json or yaml"
)

// Long messages
const (
	MsgRootLong = `robe keeps named profiles of your configuration files.

Register a file or directory as a target, save its content as a profile,
and later switch the real path back to any saved profile.`

	MsgAddLong = `Add copies the target's real path into the named profile.

With -r the target is registered at the given path first. An existing
profile or registration is only replaced with -f.`

	MsgAddExample = `  # Register ~/.tmux.conf as "tmux" and save it as the "work" profile
  robe add tmux/work -r ~/.tmux.conf

  # Save the current content as another profile
  robe add tmux/minimal

  # Overwrite an existing profile
  robe add tmux/work -f`

	MsgUseLong = `Use replaces the target's real path with a copy of the profile.

The previous content is not kept: save it with 'robe add' first.`

	MsgUseExample = `  robe use tmux/minimal`

	MsgViewExample = `  # Show the live configuration
  robe view tmux

  # Show a stored profile without decoration
  robe view tmux/work --raw`

	MsgEditExample = `  EDITOR="code -w" robe edit tmux/work`

	MsgRemoveLong = `Remove deletes a stored profile. Without a profile the whole target is
removed from storage, after confirmation. The real path is never touched.`

	MsgRemoveExample = `  robe rm tmux/old
  robe rm tmux -y`

	MsgStatusLong = `Status compares each target's real path with the profile that was last
activated for it and reports clean, modified, missing or none.`

	MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}

{{bold "Storage:"}} {{storagePath}}
{{bold "Config:"}}  {{configPath}}
{{bold "Log:"}}     {{logPath}}
`

	MsgVersionTemplate = "robe version {{.Version}}\n"
)
