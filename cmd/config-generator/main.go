package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/roblaszczak/config-generator/pkg/generator"
	"github.com/roblaszczak/config-generator/pkg/logging"
	"github.com/spf13/cobra"
)

type options struct {
	configFile   string
	templatesDir string
	outputDir    string
	suffix       string
	required     []string
	noTrim       bool
	verbosity    int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "config-generator",
		Short: "Render configuration templates from environment variables",
		Long: "Renders every template below the templates directory into the output " +
			"directory, substituting values from the process environment.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", generator.DefaultConfigFile, "config file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.templatesDir, "templates-dir", "", "directory to read templates from")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory to write generated files to")
	flags.StringVar(&opts.suffix, "suffix", "", "file suffix marking templates")
	flags.StringSliceVar(&opts.required, "require", nil, "required environment variable, can be set multiple times; replaces the default set")
	flags.BoolVar(&opts.noTrim, "no-trim", false, "keep lines that hold only a control action")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "more output, can be repeated")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	logger := logging.NewLogger(cmd.OutOrStdout(), opts.verbosity)

	config, err := generator.ParseConfig(opts.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		logger.Errorf("ERROR: %s", err)
		return err
	}

	if opts.templatesDir != "" {
		config.TemplatesDir = opts.templatesDir
	}
	if opts.outputDir != "" {
		config.OutputDir = opts.outputDir
	}
	if opts.suffix != "" {
		config.Suffix = opts.suffix
	}
	if cmd.Flags().Changed("require") {
		config.RequiredVariables = opts.required
	}
	if opts.noTrim {
		config.TrimControlLines = false
	}

	g := generator.Generator{
		Config: config,
		Env:    generator.EnvironmentFromOS(),
		Logger: logger,
	}

	if _, err := g.Run(); err != nil {
		// template failures are reported by the generator itself
		var templateErr *generator.TemplateError
		if !errors.As(err, &templateErr) {
			logger.Errorf("ERROR: %s", err)
		}
		return err
	}

	return nil
}
