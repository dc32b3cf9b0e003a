package lxd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Binary invoked when no override is given to [NewClient].
const DefaultBinary = "lxc"

// Invokes the lxc command-line tool.
//
// The zero value is not usable; construct clients with [NewClient]. A Client
// holds no connection state of its own: every operation is a fresh, blocking
// invocation of the binary, and the lxc tool owns all remote connection and
// authentication mechanics.
type Client struct {
	runner runner // Process execution seam, replaced by a recorder in tests.
}

// Creates a client for the given lxc binary.
//
// An empty binary selects [DefaultBinary], resolved through PATH.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{runner: execRunner{bin: binary}}
}

// Abstracts process execution so tests can record issued argument vectors
// and script failures without spawning processes.
type runner interface {

	// Runs the tool to completion, surfacing no output. Returns nil only
	// when the process exits successfully.
	Run(ctx context.Context, args ...string) error

	// Runs the tool to completion and returns its raw standard output on
	// success. Output is fully buffered in memory; expected payloads are
	// small JSON listings.
	Output(ctx context.Context, args ...string) ([]byte, error)
}

// Deletes a container or snapshot by name.
//
// Snapshots are addressed as "<container>/<snapshot>". Running containers
// cannot be deleted; stop them first.
func (c *Client) Delete(ctx context.Context, loc Location, name string) error {
	return c.runner.Run(ctx, "delete", loc.Qualify(name))
}

// Executes the lxc binary as a child process.
type execRunner struct {
	bin string // Binary name or path.
}

func (r execRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	return r.translate(args, cmd.Run())
}

func (r execRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, r.translate(args, err)
	}
	return out, nil
}

// Maps a process result onto the error taxonomy.
//
// A non-zero exit becomes [ErrCommand] carrying the full argument list and
// the raw exit status, since the tool offers no structured error channel.
// Spawn failures (binary missing, not executable) propagate the underlying
// os/exec error.
func (r execRunner) translate(args []string, err error) error {
	if err == nil {
		return nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return fmt.Errorf("%w: %s %s: %s", ErrCommand, r.bin, strings.Join(args, " "), exit)
	}
	return fmt.Errorf("%s: %w", r.bin, err)
}
