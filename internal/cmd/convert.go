package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/imaging"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert an image file to another colorspace",
	Long: `Convert an image file to another colorspace and write the result.

Select the conversion with --conversion (e.g. rgb2hsv) or with --to, optionally
with --from. Without --from the source is the input's label: rgb for color
files, gray for grayscale files. Use --assume to relabel the input, e.g. when it
holds raw LAB channels written by an earlier conversion.

rgb, bgr and gray results are written in display colors; hsv, hls and lab
results are written as raw channel values.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("conversion", "c", "", "Conversion name, e.g. rgb2hsv")
	convertCmd.Flags().String("from", "", "Source colorspace (default: the input's label)")
	convertCmd.Flags().StringP("to", "t", "", "Target colorspace")
	convertCmd.Flags().String("assume", "", "Label to attach to the input before converting")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.conversion", "conversion"},
		{"convert.from", "from"},
		{"convert.to", "to"},
		{"convert.assume", "assume"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	logger, conv, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	t, err := imaging.LoadTensor(imaging.NewImageCache(), input)
	if err != nil {
		return err
	}
	if assume := viper.GetString("convert.assume"); assume != "" {
		cs, err := tensor.ParseColorspace(assume)
		if err != nil {
			return err
		}
		t.SetColorspace(cs)
	}

	pair, err := colorconv.Resolve(
		viper.GetString("convert.conversion"),
		viper.GetString("convert.from"),
		viper.GetString("convert.to"),
		t.Colorspace(),
	)
	if err != nil {
		return err
	}

	out, err := conv.Convert(t, pair)
	if err != nil {
		return err
	}
	if err := imaging.SaveTensor(out, output); err != nil {
		return err
	}

	logger.Debug("wrote converted image",
		zap.String("input", input),
		zap.String("output", output),
		zap.String("conversion", pair.Name),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s %v\n", pair.Name, input, output, out.Shape())
	return nil
}
