package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibmi-tools/savelib/internal/adapters/fs"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <library>",
		Short: "Show the catalog summary for a library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			summary, err := client.LibraryInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	}
}

func newObjectsCmd() *cobra.Command {
	var membersOnly bool

	cmd := &cobra.Command{
		Use:   "objects <library>",
		Short: "List the objects of a library",
		Long: `List the objects of a library with their catalog statistics.

With --members, lists source physical file members instead of objects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			var result interface{}
			var count int
			if membersOnly {
				records, err := client.Members(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				result, count = records, len(records)
			} else {
				records, err := client.Objects(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				result, count = records, len(records)
			}

			if count == 0 {
				cmd.Printf("No files found in library: %s\n", args[0])
				return nil
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&membersOnly, "members", false, "list source physical file members only")
	return cmd
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <library>",
		Short: "Show the last backup report for a library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := fs.NewReportFileStore(cfg.StateDir)
			report, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if report.Library == "" {
				cmd.Printf("No backup report for library: %s\n", strings.ToUpper(args[0]))
				return nil
			}
			return printJSON(cmd, report)
		},
	}
}

// printJSON renders a result to stdout as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
