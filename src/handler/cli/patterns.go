package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"review-bot/src/model"
	"review-bot/src/service/analysis"
	"review-bot/src/service/syntax"
)

func (h *Handler) patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the risk pattern catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range syntax.Names() {
				lang, err := syntax.ForName(name)
				if err != nil {
					return err
				}

				fmt.Printf("%s:\n", name)
				for _, category := range model.Categories {
					fmt.Printf("  %s:\n", category)
					for _, rule := range analysis.CatalogFor(lang) {
						if rule.Category != category {
							continue
						}
						fmt.Printf("    %-18s %s\n", rule.Name, rule.Description)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
}
