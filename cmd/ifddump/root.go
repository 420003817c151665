// Root command for the ifddump CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greg-hacke/go-ifd/exif"
	"greg-hacke/go-ifd/meta"
)

// Exit codes
const (
	exitSuccess   = 0
	exitUserError = 1
	exitNotFound  = 2
)

// Flag values
var (
	flagConfigDir string
	flagJSON      bool
	flagTag       string
	flagMaxDepth  int
	flagVerbose   bool
)

// cfg holds the merged flag/env/config view. Set by PersistentPreRunE
// before run executes.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:           "ifddump <file>",
	Short:         "ifddump extracts EXIF and maker note tags from image files",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(resolveConfigDir())
		if err != nil {
			return err
		}
		if err := v.BindPFlag(cfgKeyMaxDepth, cmd.Flags().Lookup("max-depth")); err != nil {
			return err
		}
		cfg = v
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $IFDDUMP_CONFIG_DIR or current directory)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.Flags().StringVar(&flagTag, "tag", "", "print one tag, qualified (\"Canon:ColorSpace\") or bare (\"ColorSpace\")")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "directory recursion limit (default 10)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log traversal details to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.DebugLevel)
	}

	opts := exif.Options{
		MaxDepth: cfg.GetInt(cfgKeyMaxDepth),
		Logger:   logger,
	}

	md, err := meta.ReadMetadataOpts(args[0], opts)
	if err != nil {
		return err
	}

	if flagTag != "" {
		tag, err := md.Get(flagTag)
		if err != nil {
			if errors.Is(err, exif.ErrNotFound) {
				return fmt.Errorf("tag %q not found: %w", flagTag, exif.ErrNotFound)
			}
			return err
		}
		fmt.Printf("%s = %v\n", tag.Key(), displayValue(tag))
		return nil
	}

	if flagJSON {
		out, err := md.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for _, t := range md.Tags() {
		fmt.Printf("[%-10s] %-28s %v\n", t.Group1, t.Key(), displayValue(t))
	}
	for _, d := range md.Result.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}
	return nil
}

func displayValue(t *exif.StoredTag) interface{} {
	if t.Print != nil {
		return t.Print
	}
	return t.Value
}
