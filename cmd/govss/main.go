// Command govss creates, inspects and deletes volume shadow copies.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kettleby/govss"
)

var logger *zap.SugaredLogger

func main() {
	rawLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rawLogger.Sync()
	logger = rawLogger.Sugar()

	if err := newRootCommand().Execute(); err != nil {
		logger.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "govss",
		Short:        "Manage volume shadow copies",
		SilenceUsage: true,
	}

	root.AddCommand(
		newCreateCommand(),
		newListCommand(),
		newProvidersCommand(),
		newWritersCommand(),
		newDeleteCommand(),
		newExposeCommand(),
		newPrivilegesCommand(),
	)

	return root
}

// parseSnapshotID validates a snapshot id argument, accepting both plain and
// brace-wrapped forms.
func parseSnapshotID(arg string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(arg, "{"), "}")
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot id %q: %w", arg, err)
	}

	return "{" + id.String() + "}", nil
}

func newCreateCommand() *cobra.Command {
	var (
		provider string
		timeout  time.Duration
		keep     bool
	)

	cmd := &cobra.Command{
		Use:   "create <volume>...",
		Short: "Create a snapshot set covering the given volumes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := vss.DefaultOptions
			opt.Provider = provider
			if timeout > 0 {
				opt.Timeout = timeout
			}
			if keep {
				opt.Context = vss.VSS_CTX_APP_ROLLBACK
			}

			set, err := vss.CreateSnapshots(args, opt)
			if err != nil {
				return err
			}

			for i := range set.Snapshots {
				snapshot := &set.Snapshots[i]
				logger.Infow("created snapshot",
					"volume", snapshot.OriginalVolume(),
					"device", snapshot.DeviceObject())
			}

			if keep {
				return nil
			}

			logger.Info("deleting snapshot set")
			return set.Delete()
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "",
		"snapshot provider id or name, empty for the system default")
	cmd.Flags().DurationVar(&timeout, "timeout", 0,
		"timeout for each asynchronous VSS operation")
	cmd.Flags().BoolVar(&keep, "keep", false,
		"create a persistent snapshot set instead of deleting it again")

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all shadow copies known to the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := vss.ListSnapshots()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Snapshot ID", "Volume", "Created", "State"})
			for _, snapshot := range snapshots {
				table.Append([]string{
					snapshot.SnapshotID,
					snapshot.OriginalVolume,
					snapshot.CreatedAt.Format(time.RFC3339),
					snapshot.State.Str(),
				})
			}
			table.Render()

			return nil
		},
	}
}

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the registered snapshot providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := vss.ListProviders()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Provider ID", "Name", "Type", "Version"})
			for _, provider := range providers {
				table.Append([]string{
					provider.ProviderID,
					provider.Name,
					provider.Type.Str(),
					provider.Version,
				})
			}
			table.Render()

			return nil
		},
	}
}

func newWritersCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "writers",
		Short: "Show the state of all VSS writers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := vss.DefaultOptions
			if timeout > 0 {
				opt.Timeout = timeout
			}

			statuses, err := vss.WriterStatuses(opt)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Writer ID", "Name", "State", "Failure"})
			for _, status := range statuses {
				table.Append([]string{
					status.WriterID,
					status.Name,
					status.State.Str(),
					status.Failure.Str(),
				})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0,
		"timeout for each asynchronous VSS operation")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a shadow copy by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSnapshotID(args[0])
			if err != nil {
				return err
			}

			if err := vss.DeleteSnapshotByID(id); err != nil {
				return err
			}

			logger.Infow("deleted snapshot", "id", id)
			return nil
		},
	}
}

func newExposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expose <snapshot-id> <drive-letter-or-empty-dir>",
		Short: "Expose a shadow copy at a drive letter or empty directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSnapshotID(args[0])
			if err != nil {
				return err
			}

			exposed, err := vss.ExposeSnapshotByID(id, args[1])
			if err != nil {
				return err
			}

			logger.Infow("exposed snapshot", "id", id, "path", exposed)
			return nil
		},
	}
}

func newPrivilegesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "privileges",
		Short: "Check whether the caller may use VSS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vss.HasSufficientPrivileges(); err != nil {
				return err
			}

			logger.Info("sufficient privileges for VSS")
			return nil
		},
	}
}
