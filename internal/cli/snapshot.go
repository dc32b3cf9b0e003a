package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl snapshot' command.
type SnapshotCmd struct {
	Name     string `arg:"" help:"Container name."`
	Snapshot string `arg:"" help:"Name for the new snapshot."`
}

// Executes the snapshot command.
func (s *SnapshotCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	snap, err := client.Container(loc, s.Name).Snapshot(ctx, s.Snapshot)
	if err != nil {
		return err
	}
	fmt.Println(snap.Name())
	return nil
}

// Represents the 'lxdctl publish' command.
type PublishCmd struct {
	Name     string `arg:"" help:"Container name."`
	Snapshot string `arg:"" help:"Snapshot to publish."`
	Alias    string `arg:"" help:"Alias for the new image."`
}

// Executes the publish command.
func (p *PublishCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Publish(ctx, loc, p.Name+"/"+p.Snapshot, p.Alias)
}
