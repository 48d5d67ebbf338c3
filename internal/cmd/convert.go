package cmd

import (
	"fmt"
	"strconv"

	"github.com/MeKo-Tech/nicecolors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another representation",
	Long: `Convert parses a color given in any supported syntax and prints it in the
requested output format.

Channel values above 255 inside rgb() wrap modulo 256; this matches the
permissive parser used by the library.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("to", "hex", "Output format (hex, rgb, rgba, hsl, decimal, name)")
	convertCmd.Flags().Float64("alpha", 1.0, "Alpha value used by the rgba output format")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.to", "to"},
		{"convert.alpha", "alpha"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	to := viper.GetString("convert.to")
	alpha := viper.GetFloat64("convert.alpha")

	if logger == nil {
		initLogging()
	}

	color, err := nicecolors.Parse(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[0], err)
	}

	logger.Debug("parsed color", "input", args[0], "hex", color.Hex())

	out, err := formatColor(color, to, alpha)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// formatColor renders a color in one of the CLI output formats.
func formatColor(c nicecolors.Color, to string, alpha float64) (string, error) {
	switch to {
	case "hex":
		return "#" + c.Hex(), nil
	case "rgb":
		return c.RGBString(), nil
	case "rgba":
		return c.RGBAString(alpha), nil
	case "hsl":
		hsl := c.HSL()
		return fmt.Sprintf("hsl(%.0f,%.0f%%,%.0f%%)",
			hsl.Hue, hsl.Saturation*100, hsl.Lightness*100), nil
	case "decimal":
		return strconv.FormatUint(uint64(c.Decimal()), 10), nil
	case "name":
		name, ok := nicecolors.Name(c)
		if !ok {
			return "", fmt.Errorf("no HTML color name for #%s", c.Hex())
		}
		return name, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", to)
	}
}
