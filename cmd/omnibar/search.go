package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leechristophermurray/launch/internal/omnibar"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Run a query through the omnibar and print the ranked items",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine()
			if err != nil {
				return err
			}
			defer e.cache.Stop()

			query := strings.Join(args, " ")

			// Search is non-cancelable, so each invocation is tagged with a
			// fresh generation id; a caller firing queries as the user types
			// uses this to discard a response that arrives after a newer one.
			generation := omnibar.NewQueryGeneration()
			items := e.eng.Search(query)
			fmt.Fprintf(cmd.ErrOrStderr(), "generation: %s\n", generation)
			if len(items) == 0 {
				fmt.Println("(no results)")
				return nil
			}
			for _, it := range items {
				running := ""
				if it.Running {
					running = " [running]"
				}
				fmt.Printf("%s%s\n  exec: %s\n", it.Name, running, it.Exec)
			}
			return nil
		},
	}
}
