package cli

import (
	"context"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl push' command.
type PushCmd struct {
	Name      string `arg:"" help:"Container name."`
	Source    string `arg:"" help:"Host path to copy from."`
	Dest      string `arg:"" help:"Path inside the container."`
	Recursive bool   `short:"r" help:"Copy a directory tree instead of a single file."`
	AsRoot    bool   `help:"Normalize ownership of the pushed files to root."`
}

// Executes the push command.
func (p *PushCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	ctr := client.Container(loc, p.Name)
	if p.AsRoot {
		return ctr.PushAsRoot(ctx, p.Source, p.Dest, p.Recursive)
	}
	return ctr.Push(ctx, p.Source, p.Dest, p.Recursive)
}

// Represents the 'lxdctl pull' command.
type PullCmd struct {
	Name      string `arg:"" help:"Container name."`
	Source    string `arg:"" help:"Path inside the container to copy from."`
	Dest      string `arg:"" help:"Host path to copy to."`
	Recursive bool   `short:"r" help:"Copy a directory tree instead of a single file."`
}

// Executes the pull command.
func (p *PullCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Container(loc, p.Name).Pull(ctx, p.Source, p.Dest, p.Recursive)
}
