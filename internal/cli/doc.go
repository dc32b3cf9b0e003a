// Parses flags and dispatches lxdctl subcommands.
//
// Each subcommand is a thin wrapper over the lxd package: flags and
// positional arguments are mapped onto a client call, and results are
// printed for human consumption. The --remote flag (or the settings file)
// selects the host every subcommand operates on.
package cli
