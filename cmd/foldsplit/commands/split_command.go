package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/webfold/foldsplit/internal/markup"
	"github.com/webfold/foldsplit/internal/sink"
	"github.com/webfold/foldsplit/pkg/splitter"
)

var outputMode = sink.Default

func init() {
	command := &cobra.Command{
		Use:   "split [image]",
		Short: "Split a PC image into overlapping tiles and generate markup",
		Long: "Split a PC image into overlapping tiles and generate markup.\n" +
			"The image is resized (2x by default), cut into ~200px tiles with a 10px\n" +
			"overlap, and saved as numbered files next to the source. When the image\n" +
			"lives under a pc/ directory and an sp/ counterpart exists, the SP image\n" +
			"is split into the same number of tiles and responsive markup is emitted.",
		RunE: SplitCommand,
		Args: cobra.ExactArgs(1),
	}

	command.Flags().Int("width", 0, "Target width for the PC image in pixels")
	command.Flags().Float64("scale", 0, "Scale factor for the PC image (default 2.0)")
	command.Flags().Int("sp-width", 0, "Target width for the SP image in pixels")
	command.Flags().Float64("sp-scale", 0, "Scale factor for the SP image (default 2.0)")
	command.Flags().String("media", markup.DefaultMedia, "media attribute for the responsive <source> tag")
	command.Flags().String("config", "", "Path to a JSON config file (width, scale, sp_width, sp_scale, media)")

	outputFlag := enumflag.New(&outputMode, "output", sink.CommandValue, enumflag.EnumCaseInsensitive)
	_ = outputFlag.RegisterCompletion(command, "output", sink.HelpText)
	command.Flags().VarP(
		outputFlag,
		"output", "o",
		fmt.Sprintf("Where to send the generated markup: %s", sink.ListAll()))

	AddCommand(command)
}

func SplitCommand(cmd *cobra.Command, args []string) error {
	path := args[0]
	if path == "" {
		return fmt.Errorf("image path is required")
	}

	cfg, err := mergeConfig(cmd)
	if err != nil {
		return err
	}

	result, err := splitter.Split(&splitter.Options{
		Path:     path,
		PCResize: cfg.pcResize,
		SPResize: cfg.spResize,
		Media:    cfg.media,
		Output:   sink.For(outputMode, os.Stdout),
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("tiles", result.TileCount).
		Str("output", outputMode.String()).
		Msg("Markup generated")
	return nil
}
