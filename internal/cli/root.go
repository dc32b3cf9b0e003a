package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/lxdctl/internal"
	"github.com/cruciblehq/lxdctl/internal/config"
	"github.com/cruciblehq/lxdctl/internal/paths"
	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the root command for the lxdctl tool.
var RootCmd struct {
	Quiet  bool   `short:"q" help:"Suppress informational output."`
	Debug  bool   `short:"d" help:"Enable debug output."`
	Remote string `short:"r" help:"Operate on the named remote host." placeholder:"HOST"`
	Binary string `help:"Override the lxc binary." placeholder:"PATH"`
	Config string `help:"Override the settings file path." placeholder:"PATH"`

	Launch   LaunchCmd   `cmd:"" help:"Launch an ephemeral container."`
	Exec     ExecCmd     `cmd:"" help:"Run a command inside a container."`
	Mount    MountCmd    `cmd:"" help:"Attach a host directory as a disk device."`
	Push     PushCmd     `cmd:"" help:"Copy files from the host into a container."`
	Pull     PullCmd     `cmd:"" help:"Copy files from a container to the host."`
	Snapshot SnapshotCmd `cmd:"" help:"Take a snapshot of a container."`
	Publish  PublishCmd  `cmd:"" help:"Publish a snapshot as an image."`
	List     ListCmd     `cmd:"" help:"List containers."`
	Images   ImagesCmd   `cmd:"" help:"List images."`
	Stop     StopCmd     `cmd:"" help:"Stop, and thereby delete, an ephemeral container."`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stopped container or a snapshot."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// Flags override the settings file, which in turn supplies defaults for the
// remote host and the lxc binary.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Control LXD containers and snapshots through the lxc tool."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	cfgPath := RootCmd.Config
	if cfgPath == "" {
		cfgPath = paths.ConfigFile()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	remote := RootCmd.Remote
	if remote == "" {
		remote = cfg.Remote
	}
	loc := lxd.Local()
	if remote != "" {
		loc = lxd.Remote(remote)
	}

	binary := RootCmd.Binary
	if binary == "" {
		binary = cfg.Binary
	}

	return kongCtx.Run(lxd.NewClient(binary), loc)
}

// Adjusts the default logger's level based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()

	switch {
	case debug:
		internal.LogLevel.Set(slog.LevelDebug)
	case quiet:
		internal.LogLevel.Set(slog.LevelWarn)
	default:
		internal.LogLevel.Set(slog.LevelInfo)
	}
}
