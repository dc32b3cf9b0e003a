package cli

import (
	"context"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl mount' command.
type MountCmd struct {
	Name   string `arg:"" help:"Container name."`
	Device string `arg:"" help:"Device name, unique among the container's devices."`
	Source string `arg:"" help:"Host directory to attach."`
	Path   string `arg:"" help:"Path inside the container."`
}

// Executes the mount command.
func (m *MountCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	return client.Container(loc, m.Name).Mount(ctx, m.Device, m.Source, m.Path)
}
