package lxd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
)

const imageJSON = `[
  {
    "auto_update": true,
    "properties": {"description": "Ubuntu 22.04 LTS", "os": "ubuntu", "release": "jammy"},
    "public": false,
    "aliases": [{"name": "build-base", "description": "base image for builds"}],
    "architecture": "x86_64",
    "cached": true,
    "filename": "ubuntu-22.04-server-cloudimg-amd64-lxd.tar.xz",
    "fingerprint": "b5f3dc65b2f97a363e8e1c8a0f9f05e7d6d8be9e9e3d52335ab2a434cb76a2c3",
    "size": 255774848,
    "update_source": {"protocol": "simplestreams", "server": "https://cloud-images.ubuntu.com/releases"},
    "created_at": "2026-01-05T00:00:00Z",
    "expires_at": "2027-01-05T00:00:00Z",
    "last_used_at": "2026-01-11T09:00:00Z",
    "uploaded_at": "2026-01-05T04:00:00Z"
  }
]`

func TestImages(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(imageJSON), nil },
	}
	c := testClient(f)

	images, err := c.Images(context.Background(), Local())
	if err != nil {
		t.Fatalf("Images = %v", err)
	}

	want := "image list --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}

	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	img := images[0]
	if !img.AutoUpdate || img.Size != 255774848 {
		t.Errorf("parsed record mismatch: %+v", img)
	}
	if len(img.Aliases) != 1 || img.Aliases[0].Name != "build-base" {
		t.Errorf("aliases not parsed: %+v", img.Aliases)
	}
}

func TestImagesRemote(t *testing.T) {
	f := &fakeRunner{}
	c := testClient(f)

	if _, err := c.Images(context.Background(), Remote("myhost")); err != nil {
		t.Fatalf("Images = %v", err)
	}

	want := "image list myhost: --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}
}

func TestImage(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(imageJSON), nil },
	}
	c := testClient(f)

	img, err := c.Image(context.Background(), Local(), "build-base")
	if err != nil {
		t.Fatalf("Image = %v", err)
	}
	if img.Filename == "" {
		t.Errorf("parsed record mismatch: %+v", img)
	}

	want := "image list build-base --format json"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("issued %q, want %q", got, want)
	}
}

func TestImageNotFound(t *testing.T) {
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) { return []byte(`[]`), nil },
	}
	c := testClient(f)

	if _, err := c.Image(context.Background(), Local(), "missing"); !errdefs.IsNotFound(err) {
		t.Errorf("Image = %v, want not-found", err)
	}
}

func TestImageUpdateSourceDefault(t *testing.T) {
	// A locally published image carries no update_source; the field must
	// come back as an empty map, never nil.
	f := &fakeRunner{
		outFn: func(args []string) ([]byte, error) {
			return []byte(`[{"fingerprint": "abc123", "size": 1}]`), nil
		},
	}
	c := testClient(f)

	img, err := c.Image(context.Background(), Local(), "abc123")
	if err != nil {
		t.Fatalf("Image = %v", err)
	}
	if img.UpdateSource == nil {
		t.Error("UpdateSource = nil, want empty map")
	}
}

func TestImageDigest(t *testing.T) {
	img := Image{Fingerprint: "b5f3dc65b2f97a363e8e1c8a0f9f05e7d6d8be9e9e3d52335ab2a434cb76a2c3"}

	d := img.Digest()
	if d.Algorithm().String() != "sha256" {
		t.Errorf("algorithm = %q, want sha256", d.Algorithm())
	}
	if d.Encoded() != img.Fingerprint {
		t.Errorf("encoded = %q, want the fingerprint", d.Encoded())
	}
}

func TestImageRoundTrip(t *testing.T) {
	var list []Image
	if err := json.Unmarshal([]byte(imageJSON), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var again []Image
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}

	if diff := cmp.Diff(list, again); diff != "" {
		t.Errorf("round trip changed the record (-orig +again):\n%s", diff)
	}
}
