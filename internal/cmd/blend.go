package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/nicecolors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var blendCmd = &cobra.Command{
	Use:   "blend <colorA> <colorB>",
	Short: "Blend two colors",
	Long: `Blend linearly interpolates between two colors. An amount of 0 yields the
first color, 1 the second; values outside that range snap to the nearest
endpoint.`,
	Args: cobra.ExactArgs(2),
	RunE: runBlend,
}

func init() {
	rootCmd.AddCommand(blendCmd)

	blendCmd.Flags().Float64("amount", 0.5, "Blend amount between 0 and 1")
	blendCmd.Flags().String("to", "hex", "Output format (hex, rgb, rgba, hsl, decimal, name)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"blend.amount", "amount"},
		{"blend.to", "to"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, blendCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBlend(cmd *cobra.Command, args []string) error {
	amount := viper.GetFloat64("blend.amount")
	to := viper.GetString("blend.to")

	if logger == nil {
		initLogging()
	}

	a, err := nicecolors.Parse(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[0], err)
	}
	b, err := nicecolors.Parse(args[1])
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[1], err)
	}

	blended := a.Blend(b, amount)
	logger.Debug("blended colors",
		"a", a.Hex(),
		"b", b.Hex(),
		"amount", amount,
		"result", blended.Hex(),
	)

	out, err := formatColor(blended, to, 1)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
