// Package listflags holds flags shared by the commands that print task lists.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag to list commands.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("all", false, "Include expired tasks")
		return
	}

	cmd.Flags().BoolVar(target, "all", false, "Include expired tasks")
}

// AddJSONFlag adds a shared --json flag to commands that print tasks.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}
