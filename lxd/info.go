package lxd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/containerd/errdefs"
)

// Runtime counters for a running container, present in [Info] only when
// the server reported them.
type State struct {
	Status     string           `json:"status"`
	StatusCode int              `json:"status_code"`
	Memory     map[string]int64 `json:"memory"`
	PID        int              `json:"pid"`
	Processes  int              `json:"processes"`
	CPU        map[string]int64 `json:"cpu"`
}

// Describes one snapshot in a container's [Info] listing.
type SnapshotInfo struct {
	Architecture    string                       `json:"architecture"`
	Config          map[string]string            `json:"config"`
	CreatedAt       time.Time                    `json:"created_at"`
	Ephemeral       bool                         `json:"ephemeral"`
	ExpandedConfig  map[string]string            `json:"expanded_config"`
	ExpandedDevices map[string]map[string]string `json:"expanded_devices"`
	LastUsedAt      time.Time                    `json:"last_used_at"`
	Name            string                       `json:"name"`
	Profiles        []string                     `json:"profiles"`
	Stateful        bool                         `json:"stateful"`
}

// Configuration and state of a container as reported by the lxc tool.
//
// An Info is an immutable snapshot in time: it is fetched once and never
// updated. Re-fetch to observe changes. State and Snapshots are present
// only when the server included them in the listing.
type Info struct {
	Architecture    string                       `json:"architecture"`
	Config          map[string]string            `json:"config"`
	Devices         map[string]map[string]string `json:"devices"`
	Ephemeral       bool                         `json:"ephemeral"`
	Profiles        []string                     `json:"profiles"`
	CreatedAt       time.Time                    `json:"created_at"`
	ExpandedConfig  map[string]string            `json:"expanded_config"`
	ExpandedDevices map[string]map[string]string `json:"expanded_devices"`
	Name            string                       `json:"name"`
	Stateful        bool                         `json:"stateful"`
	Status          string                       `json:"status"`
	StatusCode      int                          `json:"status_code"`
	LastUsedAt      time.Time                    `json:"last_used_at"`
	State           *State                       `json:"state,omitempty"`
	Snapshots       []SnapshotInfo               `json:"snapshots,omitempty"`
}

// Lists all containers at the location.
func (c *Client) List(ctx context.Context, loc Location) ([]Info, error) {
	return c.listInfo(ctx, loc, "")
}

// Fetches the one container with the given name.
//
// The name is matched with an anchored filter so it cannot match a prefix
// of another container's name. Zero matches and multiple matches both
// resolve to a not-found error, since either way the name did not uniquely
// identify a container; use [errdefs.IsNotFound] to detect this case.
func (c *Client) Info(ctx context.Context, loc Location, name string) (*Info, error) {
	list, err := c.listInfo(ctx, loc, name+"$")
	if err != nil {
		return nil, err
	}
	if len(list) != 1 {
		return nil, fmt.Errorf("container %q matched %d instances: %w", name, len(list), errdefs.ErrNotFound)
	}
	return &list[0], nil
}

// Runs a container listing, optionally filtered, and parses the JSON array.
func (c *Client) listInfo(ctx context.Context, loc Location, filter string) ([]Info, error) {
	args := []string{"list"}
	if loc.IsRemote() {
		args = append(args, loc.prefix())
	}
	if filter != "" {
		args = append(args, filter)
	}
	args = append(args, "--format", "json")

	out, err := c.runner.Output(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeList[Info](out)
}

// Parses a JSON array of records, mapping decode failures onto [ErrParse].
func decodeList[T any](out []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return list, nil
}
