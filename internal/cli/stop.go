package cli

import (
	"context"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl stop' command.
type StopCmd struct {
	Name string `arg:"" help:"Container name."`
}

// Executes the stop command.
//
// Containers launched by lxdctl are ephemeral, so stopping one also deletes
// it. Unlike the library's best-effort release, a failure here is surfaced.
func (s *StopCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Container(loc, s.Name).Stop(ctx)
}

// Represents the 'lxdctl delete' command.
type DeleteCmd struct {
	Name string `arg:"" help:"Container or snapshot name, e.g. t1 or t1/clean."`
}

// Executes the delete command.
func (d *DeleteCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Delete(ctx, loc, d.Name)
}
