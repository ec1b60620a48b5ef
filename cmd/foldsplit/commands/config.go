package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webfold/foldsplit/internal/geometry"
	"github.com/webfold/foldsplit/internal/markup"
)

// ConfigConflictError is returned when both a target width and a scale are
// supplied for the same image. The resize spec is a tagged variant, so the
// conflict has to be rejected here, before the core ever sees it.
type ConfigConflictError struct {
	widthKey string
	scaleKey string
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("%s and %s are mutually exclusive", e.widthKey, e.scaleKey)
}

func NewConfigConflict(widthKey, scaleKey string) error {
	return &ConfigConflictError{widthKey: widthKey, scaleKey: scaleKey}
}

// runConfig is the merged view of CLI flags and the optional JSON config
// file. Flags that were explicitly set win over the file.
type runConfig struct {
	pcResize geometry.ResizeSpec
	spResize geometry.ResizeSpec
	media    string
}

func mergeConfig(cmd *cobra.Command) (*runConfig, error) {
	file := viper.New()
	file.SetConfigType("json")

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		file.SetConfigFile(configPath)
		if err := file.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	width := mergedInt(cmd, file, "width", "width")
	scale := mergedFloat(cmd, file, "scale", "scale")
	spWidth := mergedInt(cmd, file, "sp-width", "sp_width")
	spScale := mergedFloat(cmd, file, "sp-scale", "sp_scale")

	media := markup.DefaultMedia
	if cmd.Flags().Changed("media") {
		media, _ = cmd.Flags().GetString("media")
	} else if file.IsSet("media") {
		media = file.GetString("media")
	}

	pcResize, err := resizeSpec("width", "scale", width, scale)
	if err != nil {
		return nil, err
	}
	spResize, err := resizeSpec("sp-width", "sp-scale", spWidth, spScale)
	if err != nil {
		return nil, err
	}

	return &runConfig{
		pcResize: pcResize,
		spResize: spResize,
		media:    media,
	}, nil
}

func mergedInt(cmd *cobra.Command, file *viper.Viper, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetInt(flag)
		return value
	}
	return file.GetInt(key)
}

func mergedFloat(cmd *cobra.Command, file *viper.Viper, flag, key string) float64 {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetFloat64(flag)
		return value
	}
	return file.GetFloat64(key)
}

// resizeSpec folds the width-xor-scale pair into a tagged spec. Neither set
// means the default 2.0 scale.
func resizeSpec(widthKey, scaleKey string, width int, scale float64) (geometry.ResizeSpec, error) {
	if width > 0 && scale > 0 {
		return geometry.ResizeSpec{}, NewConfigConflict(widthKey, scaleKey)
	}
	switch {
	case width > 0:
		return geometry.ByWidth(width), nil
	case scale > 0:
		return geometry.ByScale(scale), nil
	default:
		return geometry.ResizeSpec{}, nil
	}
}
