package cli

import (
	"context"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl exec' command.
type ExecCmd struct {
	Name    string   `arg:"" help:"Container name."`
	Command []string `arg:"" passthrough:"" help:"Command and arguments to run."`
}

// Executes the exec command.
//
// The command runs non-interactively inside the container; only its exit
// status is reported.
func (e *ExecCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Container(loc, e.Name).Exec(ctx, e.Command...)
}
