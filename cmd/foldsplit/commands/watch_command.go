package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/pablodz/inotifywaitgo/inotifywaitgo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/webfold/foldsplit/internal/markup"
	"github.com/webfold/foldsplit/internal/sink"
	"github.com/webfold/foldsplit/internal/utils"
	"github.com/webfold/foldsplit/pkg/splitter"
)

var watchedExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

func init() {
	if runtime.GOOS != "linux" {
		return
	}
	command := &cobra.Command{
		Use:   "watch [folder]",
		Short: "Watch a folder for new images to split",
		Long: "Watch a folder for new images to split.\n" +
			"Every image written or moved into the folder is split with the configured\n" +
			"defaults and its markup printed to standard output.",
		RunE: WatchCommand,
		Args: cobra.ExactArgs(1),
	}

	command.Flags().Float64("scale", 0, "Scale factor for PC images (default 2.0)")
	_ = viper.BindPFlag("scale", command.Flags().Lookup("scale"))

	command.Flags().Float64("sp-scale", 0, "Scale factor for SP images (default 2.0)")
	_ = viper.BindPFlag("sp-scale", command.Flags().Lookup("sp-scale"))

	command.Flags().String("media", markup.DefaultMedia, "media attribute for the responsive <source> tag")
	_ = viper.BindPFlag("media", command.Flags().Lookup("media"))

	AddCommand(command)
}

func WatchCommand(_ *cobra.Command, args []string) error {
	path := args[0]
	if path == "" {
		return fmt.Errorf("path is required")
	}

	if !utils.IsValidFolder(path) {
		return fmt.Errorf("the path needs to be a folder")
	}

	cfg := &runConfig{media: viper.GetString("media")}
	var err error
	if cfg.pcResize, err = resizeSpec("width", "scale", 0, viper.GetFloat64("scale")); err != nil {
		return err
	}
	if cfg.spResize, err = resizeSpec("sp-width", "sp-scale", 0, viper.GetFloat64("sp-scale")); err != nil {
		return err
	}

	log.Info().Str("path", path).Str("media", cfg.media).Msg("Watching directory")

	events := make(chan inotifywaitgo.FileEvent)
	errorChan := make(chan error)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		inotifywaitgo.WatchPath(&inotifywaitgo.Settings{
			Dir:        path,
			FileEvents: events,
			ErrorChan:  errorChan,
			Options: &inotifywaitgo.Options{
				Recursive: true,
				Events: []inotifywaitgo.EVENT{
					inotifywaitgo.MOVE,
					inotifywaitgo.CLOSE_WRITE,
				},
				Monitor: true,
			},
			Verbose: false,
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range events {
			log.Debug().Str("file", event.Filename).Interface("events", event.Events).Msg("File event")

			if !isSplittable(event.Filename) {
				continue
			}

			for _, e := range event.Events {
				switch e {
				case inotifywaitgo.CLOSE_WRITE, inotifywaitgo.MOVE:
					result, err := splitter.Split(&splitter.Options{
						Path:     event.Filename,
						PCResize: cfg.pcResize,
						SPResize: cfg.spResize,
						Media:    cfg.media,
						Output:   sink.NewWriterSink(os.Stdout),
					})
					if err != nil {
						errorChan <- fmt.Errorf("error processing file %s: %w", event.Filename, err)
						continue
					}
					log.Info().Str("file", event.Filename).Int("tiles", result.TileCount).Msg("Image split")
				default:
					// ignored
				}
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errorChan {
			log.Error().Err(err).Msg("Watch error")
		}
	}()

	wg.Wait()
	return nil
}

// isSplittable filters the events down to source images. The numbered files
// the splitter itself writes (1.jpg, 2.jpg, ...) would otherwise re-trigger
// the watch in a loop.
func isSplittable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(watchedExtensions, ext) {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, err := strconv.Atoi(base); err == nil {
		return false
	}
	return true
}
