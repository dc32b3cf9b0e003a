package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl images' command.
type ImagesCmd struct {
	Name string `arg:"" optional:"" help:"Show only the named image."`
}

// Executes the images command.
func (i *ImagesCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	if i.Name != "" {
		img, err := client.Image(ctx, loc, i.Name)
		if err != nil {
			return err
		}
		printImage(img)
		return nil
	}

	list, err := client.Images(ctx, loc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tFINGERPRINT\tARCH\tSIZE\tUPLOADED")
	for _, img := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			primaryAlias(img), shortFingerprint(img.Fingerprint), img.Architecture,
			img.Size, img.UploadedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

// Prints one image's details.
func printImage(img *lxd.Image) {
	fmt.Printf("Fingerprint:  %s\n", img.Fingerprint)
	fmt.Printf("Digest:       %s\n", img.Digest())
	fmt.Printf("Architecture: %s\n", img.Architecture)
	fmt.Printf("Filename:     %s\n", img.Filename)
	fmt.Printf("Size:         %d\n", img.Size)
	fmt.Printf("Public:       %t\n", img.Public)
	fmt.Printf("Uploaded:     %s\n", img.UploadedAt)
	for _, alias := range img.Aliases {
		fmt.Printf("Alias:        %s (%s)\n", alias.Name, alias.Description)
	}
}

// Returns the image's first alias, or "-" when it has none.
func primaryAlias(img lxd.Image) string {
	if len(img.Aliases) == 0 {
		return "-"
	}
	return img.Aliases[0].Name
}

// Shortens a fingerprint for table display.
func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
