package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cruciblehq/lxdctl/lxd"
)

// Represents the 'lxdctl list' command.
type ListCmd struct {
	Name string `arg:"" optional:"" help:"Show only the named container."`
}

// Executes the list command.
//
// With a name, fetches exactly that container and prints its details; the
// name must resolve uniquely. Without one, prints a table of all containers
// at the location.
func (l *ListCmd) Run(ctx context.Context, client *lxd.Client, loc lxd.Location) error {
	if l.Name != "" {
		info, err := client.Info(ctx, loc, l.Name)
		if err != nil {
			return err
		}
		printInfo(info)
		return nil
	}

	list, err := client.List(ctx, loc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tEPHEMERAL\tARCH\tSNAPSHOTS")
	for _, info := range list {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%d\n",
			info.Name, info.Status, info.Ephemeral, info.Architecture, len(info.Snapshots))
	}
	return w.Flush()
}

// Prints one container's details.
func printInfo(info *lxd.Info) {
	fmt.Printf("Name:         %s\n", info.Name)
	fmt.Printf("Status:       %s (%d)\n", info.Status, info.StatusCode)
	fmt.Printf("Architecture: %s\n", info.Architecture)
	fmt.Printf("Ephemeral:    %t\n", info.Ephemeral)
	fmt.Printf("Profiles:     %s\n", strings.Join(info.Profiles, ", "))
	fmt.Printf("Created:      %s\n", info.CreatedAt)

	if info.State != nil {
		fmt.Printf("PID:          %d\n", info.State.PID)
		fmt.Printf("Processes:    %d\n", info.State.Processes)
	}
	for _, snap := range info.Snapshots {
		fmt.Printf("Snapshot:     %s (created %s)\n", snap.Name, snap.CreatedAt)
	}
}
