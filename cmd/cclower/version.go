package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cclower version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("cclower version %s\n", version)
		return nil
	},
}
