// Package lxd controls LXD containers and snapshots through the lxc
// command-line tool.
//
// A [Client] wraps the lxc binary and provides container creation and
// structured inspection. Containers are launched as ephemeral instances
// attached to the default bridge, so stopping a container also deletes it.
// Each [Container] tracks the snapshots taken from it and tears them down
// before itself, guaranteeing that a snapshot never outlives its parent's
// release.
//
// Every handle must be released with Destroy, usually via defer. Destroy is
// best effort: failures during release are logged and never returned,
// because release runs on error paths where a second error cannot be
// surfaced.
//
// Example usage:
//
//	client := lxd.NewClient("")
//
//	ctr, err := client.Launch(ctx, lxd.Local(), "build-1", "ubuntu:22.04")
//	if err != nil {
//	    return err
//	}
//	defer ctr.Destroy(ctx)
//
//	if err := ctr.Exec(ctx, "apt-get", "update"); err != nil {
//	    return err
//	}
//
//	snap, err := ctr.Snapshot(ctx, "clean")
//	if err != nil {
//	    return err
//	}
//	defer snap.Destroy(ctx)
//
//	if err := snap.Publish(ctx, "build-base"); err != nil {
//	    return err
//	}
package lxd
