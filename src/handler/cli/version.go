package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("review-bot %s\n", h.cfg.Agent.Version)
		},
	}
}
