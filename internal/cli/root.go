// Package cli wires the numfmt commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/logger"
	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// version is overridden at build time with -ldflags.
var version = "dev"

type options struct {
	configPath string
	format     string
	locale     string
	grouper    string
	verbose    bool
}

// settings are the effective options after merging file and flags.
type settings struct {
	config *config.Configuration
	log    logger.Logger
}

// NewRootCommand builds the numfmt command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "numfmt",
		Short:        "Format grouped numbers and convert units to subunits",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")

	root.AddCommand(newGroupCommand(opts))
	root.AddCommand(newSubunitCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// resolve merges defaults, the configuration file and explicitly set flags.
func (o *options) resolve(cmd *cobra.Command) (*settings, error) {
	level := logger.LevelWarn
	if o.verbose {
		level = logger.LevelDebug
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.NewInputParser().LoadFromFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Debugf("loaded configuration from %s", o.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Lookup("locale") != nil && flags.Changed("locale") {
		cfg.Locale = o.locale
	}
	if flags.Lookup("grouper") != nil && flags.Changed("grouper") {
		cfg.Grouper = strings.ToLower(strings.TrimSpace(o.grouper))
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	if output.GetFormatterByName(cfg.Format) == nil {
		return nil, fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, cfg.Format)
	}
	return &settings{config: cfg, log: log}, nil
}

// locale returns the configured locale, or the environment's when unset.
func (s *settings) locale() language.Tag {
	if s.config.Locale == "" {
		return numfmt.AmbientLocale()
	}
	return numfmt.ParseLocale(s.config.Locale)
}

func (s *settings) write(cmd *cobra.Command, result output.Result) error {
	return output.WriteResult(cmd.OutOrStdout(), result, s.config.Format)
}
