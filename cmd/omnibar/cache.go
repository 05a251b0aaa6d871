package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the background-refreshed application cache",
	}
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the cache's refresh statistics and current snapshot size",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine()
			if err != nil {
				return err
			}
			defer e.cache.Stop()

			stats := e.cache.Stats()
			snap := e.cache.Snapshot()
			fmt.Printf("applications cached: %d\n", len(snap))
			fmt.Printf("refresh count:       %d\n", stats.RefreshCount)
			fmt.Printf("last refresh at:     %s\n", stats.LastRefreshAt)
			fmt.Printf("last refresh took:   %s\n", stats.LastRefreshDuration)
			if stats.LastError != nil {
				fmt.Printf("last error:          %v\n", stats.LastError)
			}
			return nil
		},
	})
	return cacheCmd
}
