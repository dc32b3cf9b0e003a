package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl launch' command.
type LaunchCmd struct {
	Image string `arg:"" help:"Image to launch, e.g. ubuntu:22.04."`
	Name  string `arg:"" optional:"" help:"Instance name. Generated when omitted."`
}

// Executes the launch command.
//
// Launches an ephemeral instance and waits for its network to come up. The
// instance keeps running after the process exits; it is stopped with
// 'lxdctl stop'.
func (l *LaunchCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	name := l.Name
	if name == "" {
		name = generateName()
	}

	ctr, err := client.Launch(ctx, loc, name, l.Image)
	if err != nil {
		return err
	}

	slog.Debug("container launched", "name", ctr.Name(), "image", l.Image)
	fmt.Println(ctr.Name())
	return nil
}
