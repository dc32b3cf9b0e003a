package lxd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// A point-in-time snapshot of a container.
//
// Snapshots are addressed as "<container-qualified-name>/<snapshot-name>";
// the name is derived once at creation and never recomputed. A Snapshot
// stays registered with its parent container until it is destroyed, which
// keeps the parent from being torn down underneath it: the container
// destroys all registered snapshots before issuing its own stop.
type Snapshot struct {
	container *Container
	name      string // Qualified snapshot name, fixed at creation.
	once      sync.Once
}

// Takes a snapshot of the container.
//
// The returned handle must be released with [Snapshot.Destroy]. The
// snapshot is registered with the container; destroying the container also
// destroys the snapshot.
func (c *Container) Snapshot(ctx context.Context, name string) (*Snapshot, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}

	if err := c.client.runner.Run(ctx, "snapshot", c.name, name); err != nil {
		return nil, err
	}

	s := &Snapshot{
		container: c,
		name:      c.name + "/" + name,
	}
	c.register(s)
	return s, nil
}

// Publishes an existing snapshot as an image under the given alias.
//
// The snapshot is addressed as "<container>/<snapshot>". Callers holding a
// live [Snapshot] handle should use [Snapshot.Publish] instead.
func (c *Client) Publish(ctx context.Context, loc Location, snapshot, alias string) error {
	return c.runner.Run(ctx, "publish", loc.Qualify(snapshot), "--alias", alias)
}

// Returns the qualified snapshot name.
func (s *Snapshot) Name() string {
	return s.name
}

// Publishes the snapshot as an image under the given alias.
func (s *Snapshot) Publish(ctx context.Context, alias string) error {
	return s.container.client.runner.Run(ctx, "publish", s.name, "--alias", alias)
}

// Deletes the snapshot, surfacing any failure.
//
// The handle is deregistered from the parent container whether or not the
// delete succeeds; a failed delete leaves the snapshot behind on the host
// and the error tells the caller so.
func (s *Snapshot) Delete(ctx context.Context) error {
	var err error
	ran := false
	s.once.Do(func() {
		ran = true
		err = s.container.client.runner.Run(ctx, "delete", s.name)
		s.container.deregister(s)
	})
	if !ran {
		return fmt.Errorf("%s: %w", s.name, ErrDestroyed)
	}
	return err
}

// Releases the snapshot, best effort.
//
// Issues a single delete request for the qualified snapshot name and
// deregisters the handle from the parent container. Failures are logged
// and never returned, for the same reason as [Container.Destroy]: release
// runs on unwind paths where errors cannot propagate. Idempotent.
func (s *Snapshot) Destroy(ctx context.Context) {
	s.once.Do(func() {
		if err := s.container.client.runner.Run(ctx, "delete", s.name); err != nil {
			slog.Warn("failed to delete snapshot during destruction", "name", s.name, "error", err)
		}
		s.container.deregister(s)
	})
}
