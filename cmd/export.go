package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/diarselimi/crux/internal/routine"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all stored facts as YAML",
	Long:  "Write every stored fact to stdout as YAML, sorted by key, for backup or inspection.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *routine.Engine) error {
			snap := eng.Ledger().Snapshot()
			keys := make([]string, 0, len(snap))
			for k := range snap {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			doc := &yaml.Node{Kind: yaml.MappingNode}
			for _, k := range keys {
				doc.Content = append(doc.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: k},
					&yaml.Node{Kind: yaml.ScalarNode, Value: snap[k]},
				)
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			return enc.Close()
		})
	},
}
