package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leechristophermurray/launch/internal/executor"
)

func newExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <exec-string>",
		Short: "Dispatch a raw Item.Exec string through the Command Executor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEngine()
			if err != nil {
				return err
			}
			defer e.cache.Stop()

			sig, err := e.exec.Execute(args[0])
			if err != nil {
				fmt.Printf("execute reported an error (non-fatal): %v\n", err)
			}
			switch sig {
			case executor.SignalQuit:
				fmt.Println("signal: quit")
			case executor.SignalAbout:
				fmt.Println("signal: about")
			case executor.SignalSettings:
				fmt.Println("signal: settings")
			default:
				fmt.Println("dispatched")
			}
			return nil
		},
	}
}
