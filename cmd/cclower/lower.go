package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cclower/internal/cc"
	"cclower/internal/ccfixture"
	"cclower/internal/config"
	"cclower/internal/diagnostics"
	"cclower/internal/ir"
	"cclower/internal/lower"
)

var lowerCmd = &cobra.Command{
	Use:   "lower --config <manifest.toml> --tu <fixture.json>",
	Short: "Lower a translation unit fixture into IR",
	Long:  `Runs the traversal driver over a declarative translation-unit fixture and prints the resulting IR, guided by a TOML manifest of header-to-target ownership.`,
	RunE:  runLower,
}

func init() {
	lowerCmd.Flags().String("config", "", "path to the manifest TOML file")
	lowerCmd.Flags().String("tu", "", "path to the translation-unit fixture JSON file")
	lowerCmd.Flags().String("format", "json", "output format: json or text")
	lowerCmd.MarkFlagRequired("config")
	lowerCmd.MarkFlagRequired("tu")
}

func runLower(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	tuPath, _ := cmd.Flags().GetString("tu")
	format, _ := cmd.Flags().GetString("format")

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	cfg, err := config.Load(configData)
	if err != nil {
		bag := diagnostics.NewBag()
		bag.Add(diagnostics.FromConfigError(err))
		bag.EmitAll()
		return fmt.Errorf("lowering aborted")
	}

	tuData, err := os.ReadFile(tuPath)
	if err != nil {
		return fmt.Errorf("reading translation unit: %w", err)
	}
	tu, err := ccfixture.Load(tuData)
	if err != nil {
		return fmt.Errorf("loading translation unit: %w", err)
	}

	owningTarget := func(decl cc.Decl) ir.Label {
		return cfg.ResolveOwningTarget(tu.SourceManager, decl)
	}
	driver := lower.NewDriver(tu, owningTarget, cfg.CurrentTarget)
	items := driver.Run()

	bag := diagnostics.NewBagWithSourceManager(tu.SourceManager)
	for _, item := range items {
		if unsupported, ok := item.(*ir.UnsupportedItem); ok {
			bag.Add(diagnostics.FromUnsupportedItem(unsupported))
		}
	}

	result := ir.IR{
		UsedHeaders:   cfg.UsedHeaders(),
		CurrentTarget: cfg.CurrentTarget,
		Items:         items,
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding IR: %w", err)
		}
	case "text":
		for _, item := range items {
			fmt.Printf("%T at %s\n", item, item.Loc())
		}
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}

	if len(bag.Diagnostics()) > 0 {
		bag.EmitAll()
	}
	if bag.HasErrors() {
		return fmt.Errorf("lowering failed")
	}
	return nil
}
