package cmd

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/nicecolors"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names [prefix]",
	Short: "List known HTML color names",
	Long:  `Names prints the HTML color keywords with their hex values, optionally filtered by prefix.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = strings.ToLower(args[0])
	}

	matched := 0
	for _, name := range nicecolors.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		color, _ := nicecolors.ByName(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s #%s\n", name, color.Hex())
		matched++
	}

	if matched == 0 {
		return fmt.Errorf("no color names match prefix %q", prefix)
	}
	return nil
}
