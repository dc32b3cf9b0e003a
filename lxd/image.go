package lxd

import (
	"context"
	"fmt"
	"time"

	"github.com/containerd/errdefs"
	"github.com/opencontainers/go-digest"
)

// A name under which an image can be addressed.
type ImageAlias struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Describes a stored image artifact as reported by the lxc tool.
//
// Like [Info], an Image is fetched once and never updated.
type Image struct {
	AutoUpdate   bool              `json:"auto_update"`
	Properties   map[string]string `json:"properties"`
	Public       bool              `json:"public"`
	Aliases      []ImageAlias      `json:"aliases"`
	Architecture string            `json:"architecture"`
	Cached       bool              `json:"cached"`
	Filename     string            `json:"filename"`
	Fingerprint  string            `json:"fingerprint"`
	Size         int64             `json:"size"`
	UpdateSource map[string]string `json:"update_source,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
	LastUsedAt   time.Time         `json:"last_used_at"`
	UploadedAt   time.Time         `json:"uploaded_at"`
}

// Returns the image's content fingerprint as a SHA-256 digest.
func (i *Image) Digest() digest.Digest {
	return digest.NewDigestFromEncoded(digest.SHA256, i.Fingerprint)
}

// Lists all images at the location.
func (c *Client) Images(ctx context.Context, loc Location) ([]Image, error) {
	return c.listImages(ctx, loc, "")
}

// Fetches the one image matching the given name.
//
// Zero matches and multiple matches both resolve to a not-found error;
// use [errdefs.IsNotFound] to detect this case.
func (c *Client) Image(ctx context.Context, loc Location, name string) (*Image, error) {
	list, err := c.listImages(ctx, loc, name)
	if err != nil {
		return nil, err
	}
	if len(list) != 1 {
		return nil, fmt.Errorf("image %q matched %d images: %w", name, len(list), errdefs.ErrNotFound)
	}
	return &list[0], nil
}

// Runs an image listing, optionally filtered, and parses the JSON array.
//
// The update_source map is normalized to empty when the server omits it,
// so callers never see a nil map.
func (c *Client) listImages(ctx context.Context, loc Location, filter string) ([]Image, error) {
	args := []string{"image", "list"}
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

	list, err := decodeList[Image](out)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].UpdateSource == nil {
			list[i].UpdateSource = map[string]string{}
		}
	}
	return list, nil
}
