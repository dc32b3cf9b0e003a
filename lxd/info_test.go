package lxd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
)

const infoJSON = `[
  {
    "architecture": "x86_64",
    "config": {"image.os": "ubuntu", "volatile.eth0.hwaddr": "00:16:3e:aa:bb:cc"},
    "devices": {"root": {"path": "/", "pool": "default", "type": "disk"}},
    "ephemeral": true,
    "profiles": ["default"],
    "created_at": "2026-01-10T12:00:00Z",
    "expanded_config": {"image.os": "ubuntu"},
    "expanded_devices": {"eth0": {"nictype": "bridged", "parent": "lxdbr0", "type": "nic"}},
    "name": "t1",
    "stateful": false,
    "status": "Running",
    "status_code": 103,
    "last_used_at": "2026-01-11T08:30:00Z",
    "state": {
      "status": "Running",
      "status_code": 103,
      "memory": {"usage": 104857600, "usage_peak": 209715200},
      "pid": 4242,
      "processes": 12,
      "cpu": {"usage": 5000000000}
    },
    "snapshots": [
      {
        "architecture": "x86_64",
        "config": {"image.os": "ubuntu"},
        "created_at": "2026-01-10T13:00:00Z",
        "ephemeral": false,
        "expanded_config": {"image.os": "ubuntu"},
        "expanded_devices": {"root": {"path": "/", "type": "disk"}},
        "last_used_at": "2026-01-10T13:00:00Z",
        "name": "clean",
        "profiles": ["default"],
        "stateful": false
      }
    ]
  }
]`

func TestList(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(infoJSON), nil },
	}
	c := testClient(f)

	list, err := c.List(context.Background(), Local())
	if err != nil {
		t.Fatalf("List = %v", err)
	}

	want := "list --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}

	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	info := list[0]
	if info.Name != "t1" || !info.Ephemeral || info.StatusCode != 103 {
		t.Errorf("parsed record mismatch: %+v", info)
	}
	if info.State == nil || info.State.PID != 4242 {
		t.Errorf("nested state not parsed: %+v", info.State)
	}
	if len(info.Snapshots) != 1 || info.Snapshots[0].Name != "clean" {
		t.Errorf("nested snapshots not parsed: %+v", info.Snapshots)
	}
}

func TestListRemote(t *testing.T) {
	f := &fakeRunner{}
	c := testClient(f)

	if _, err := c.List(context.Background(), Remote("myhost")); err != nil {
		t.Fatalf("List = %v", err)
	}

	want := "list myhost: --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}
}

func TestInfo(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(infoJSON), nil },
	}
	c := testClient(f)

	info, err := c.Info(context.Background(), Local(), "t1")
	if err != nil {
		t.Fatalf("Info = %v", err)
	}
	if info.Name != "t1" {
		t.Errorf("Name = %q, want %q", info.Name, "t1")
	}

	// The filter is anchored so "t1" cannot match "t10".
	want := "list t1$ --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}
}

func TestInfoNotFound(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "zero matches", json: `[]`},
		{name: "multiple matches", json: `[{"name": "t1"}, {"name": "t1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeRunner{
				outFn: func(args []string) ([]byte, error) { return []byte(tt.json), nil },
			}
			c := testClient(f)

			_, err := c.Info(context.Background(), Local(), "t1")
			if !errdefs.IsNotFound(err) {
				t.Errorf("Info = %v, want not-found", err)
			}
		})
	}
}

func TestInfoParseFailure(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(`{"not": "an array"}`), nil },
	}
	c := testClient(f)

	_, err := c.Info(context.Background(), Local(), "t1")
	if !errors.Is(err, ErrParse) {
		t.Errorf("Info = %v, want ErrParse", err)
	}
	if errdefs.IsNotFound(err) {
		t.Error("parse failure misclassified as not-found")
	}
}

func TestInfoRoundTrip(t *testing.T) {
	var list []Info
	if err := json.Unmarshal([]byte(infoJSON), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var again []Info
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}

	if diff := cmp.Diff(list, again); diff != "" {
		t.Errorf("round trip changed the record (-orig +again):\n%s", diff)
	}
}
