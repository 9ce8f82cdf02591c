package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "cclower",
	Short: "Lowers C++ headers into the language-neutral binding IR",
	Long:  `cclower runs the lowering pipeline that turns a configured set of C++ headers into the intermediate representation a bindings generator consumes.`,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
