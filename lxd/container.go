package lxd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Bridge network new containers are attached to.
const DefaultBridge = "lxdbr0"

// An LXD container addressed by its qualified name.
//
// Containers launched by [Client.Launch] are ephemeral: stopping them also
// deletes them. A Container tracks the snapshots taken from it and destroys
// them before itself, so a snapshot never survives its parent's release.
// Handles are not safe for concurrent use without external synchronization;
// the lxc tool's name namespace is the only source of truth and concurrent
// operations on the same name race at that layer.
type Container struct {
	client    *Client
	name      string               // Qualified name, fixed at creation.
	mu        sync.Mutex           // Guards snapshots and destroyed.
	snapshots map[string]*Snapshot // Live snapshots by qualified snapshot name.
	destroyed bool                 // Set once the stop request has been issued.
}

// Launches an ephemeral container and waits for its network.
//
// Two commands are issued in sequence: a launch of the image under the
// location-qualified name, attached to [DefaultBridge], and a
// non-interactive dhclient run inside the new instance. The second command
// forces a DHCP lease; without it the instance is reachable by name before
// its interface has an address, and exec, push, and pull race against the
// network coming up.
//
// If the probe fails after a successful launch, a best-effort stop is
// issued so the half-created ephemeral instance does not leak, and the
// probe error is returned.
func (c *Client) Launch(ctx context.Context, loc Location, name, image string) (*Container, error) {
	qname := loc.Qualify(name)

	if err := c.runner.Run(ctx, "launch", image, qname, "-e", "-n", DefaultBridge); err != nil {
		return nil, err
	}

	if err := c.runner.Run(ctx, "exec", qname, "--mode=non-interactive", "-n", "--", "dhclient"); err != nil {
		if stopErr := c.runner.Run(ctx, "stop", qname); stopErr != nil {
			slog.Warn("failed to stop instance after probe failure", "name", qname, "error", stopErr)
		}
		return nil, err
	}

	return &Container{
		client:    c,
		name:      qname,
		snapshots: make(map[string]*Snapshot),
	}, nil
}

// Returns a handle for an existing container.
//
// The container is not loaded or verified; the handle is a lightweight
// reference that addresses the instance by qualified name on subsequent
// calls. Destroying a handle obtained this way stops the instance like any
// other, so attach only to instances this process is responsible for.
func (c *Client) Container(loc Location, name string) *Container {
	return &Container{
		client:    c,
		name:      loc.Qualify(name),
		snapshots: make(map[string]*Snapshot),
	}
}

// Returns the container's qualified name.
func (c *Container) Name() string {
	return c.name
}

// Runs a command inside the container.
//
// The command runs non-interactively with no output capture; success or
// failure is decided solely by the exit status.
func (c *Container) Exec(ctx context.Context, command ...string) error {
	if err := c.guard(); err != nil {
		return err
	}
	args := append([]string{"exec", c.name, "--"}, command...)
	return c.client.runner.Run(ctx, args...)
}

// Attaches a host directory as a disk device inside the container.
//
// The device name must be unique among the container's attached devices.
func (c *Container) Mount(ctx context.Context, device, source, dest string) error {
	if err := c.guard(); err != nil {
		return err
	}
	return c.client.runner.Run(ctx, "config", "device", "add", c.name, device, "disk",
		"source="+source, "path="+dest)
}

// Copies a file or directory from the host into the container.
//
// Ownership of the pushed files is preserved; see [Container.PushAsRoot]
// for privileged targets.
func (c *Container) Push(ctx context.Context, source, dest string, recursive bool) error {
	return c.push(ctx, source, dest, recursive, false)
}

// Copies a file or directory into the container with root ownership.
//
// The pushed files are normalized to uid 0 / gid 0, which is what a
// privileged container context expects regardless of who owns the files on
// the host.
func (c *Container) PushAsRoot(ctx context.Context, source, dest string, recursive bool) error {
	return c.push(ctx, source, dest, recursive, true)
}

func (c *Container) push(ctx context.Context, source, dest string, recursive, asRoot bool) error {
	if err := c.guard(); err != nil {
		return err
	}
	args := []string{"file", "push"}
	if asRoot {
		args = append(args, "--uid=0", "--gid=0")
	}
	if recursive {
		args = append(args, "-r")
	}
	args = append(args, source, guestPath(c.name, dest))
	return c.client.runner.Run(ctx, args...)
}

// Copies a file or directory from the container to the host.
func (c *Container) Pull(ctx context.Context, source, dest string, recursive bool) error {
	if err := c.guard(); err != nil {
		return err
	}
	args := []string{"file", "pull"}
	if recursive {
		args = append(args, "-r")
	}
	args = append(args, guestPath(c.name, source), dest)
	return c.client.runner.Run(ctx, args...)
}

// Stops the container, surfacing any failure.
//
// The container was created ephemeral, so stopping it also deletes it.
// After a successful stop the handle is destroyed and every further
// operation fails with [ErrDestroyed]. Snapshots still registered with the
// container are destroyed first, keeping the child-before-parent teardown
// order.
func (c *Container) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", c.name, ErrDestroyed)
	}
	snaps := c.liveSnapshots()
	c.mu.Unlock()

	for _, s := range snaps {
		s.Destroy(ctx)
	}

	c.mu.Lock()
	c.destroyed = true
	c.mu.Unlock()

	return c.client.runner.Run(ctx, "stop", c.name)
}

// Releases the container, best effort.
//
// All live snapshots are destroyed first, then a single stop request is
// issued for the qualified name. Failures are logged and never returned:
// Destroy runs on unwind paths (defer) where a second error cannot be
// propagated. Destroy is idempotent; only the first call issues the stop.
func (c *Container) Destroy(ctx context.Context) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	snaps := c.liveSnapshots()
	c.mu.Unlock()

	for _, s := range snaps {
		s.Destroy(ctx)
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	c.mu.Unlock()

	if err := c.client.runner.Run(ctx, "stop", c.name); err != nil {
		slog.Warn("failed to stop container during destruction", "name", c.name, "error", err)
	}
}

// Returns the registered snapshots. Callers must hold mu.
func (c *Container) liveSnapshots() []*Snapshot {
	snaps := make([]*Snapshot, 0, len(c.snapshots))
	for _, s := range c.snapshots {
		snaps = append(snaps, s)
	}
	return snaps
}

// Fails with [ErrDestroyed] once the handle has been released.
func (c *Container) guard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return fmt.Errorf("%s: %w", c.name, ErrDestroyed)
	}
	return nil
}

func (c *Container) register(s *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[s.name] = s
}

func (c *Container) deregister(s *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, s.name)
}

// Joins a qualified container name with an absolute in-guest path.
func guestPath(name, path string) string {
	if len(path) > 0 && path[0] == '/' {
		return name + path
	}
	return name + "/" + path
}
