package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/intervaltree/internal/intervalfile"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run point or range queries against the interval file",
	}
	cmd.AddCommand(newQueryPointCmd())
	cmd.AddCommand(newQueryRangeCmd())
	return cmd
}

func newQueryPointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "point <p>",
		Short: "List the intervals containing a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := intervalfile.ParseBound(args[0])
			if err != nil {
				return err
			}
			tr, err := loadTree()
			if err != nil {
				return err
			}

			names := tr.TestPoint(p)
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no intervals contain %s\n", p)
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newQueryRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <start> <end>",
		Short: "List the intervals overlapping a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := intervalfile.ParseBound(args[0])
			if err != nil {
				return err
			}
			end, err := intervalfile.ParseBound(args[1])
			if err != nil {
				return err
			}
			tr, err := loadTree()
			if err != nil {
				return err
			}

			names, err := tr.TestRange(start, end)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no intervals overlap [%s,%s]\n", start, end)
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
