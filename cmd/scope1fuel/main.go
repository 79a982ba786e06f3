// Package main provides the CLI entry point for scope1fuel.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/scope1fuel-go/internal/config"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/output"
	"github.com/ukaji3/scope1fuel-go/pkg/scope1/parser"
)

var (
	configPath     string
	entity         string
	templatePath   string
	templateSheet  string
	outputPath     string
	outputSheet    string
	format         string
	pretty         bool
	profileFiles   []string
	randomDefaults bool
	seed           uint64
	logLevel       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scope1fuel",
		Short: "Normalize client fuel workbooks into the Scope 1 template",
		Long: `scope1fuel merges the sheets of a client fuel-consumption workbook and
reshapes them into the Scope 1 emissions reporting template.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringSliceVar(&profileFiles, "profiles", nil, "Extra profile files (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	convertCmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert a client workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&entity, "entity", "e", "", "Entity profile (required)")
	convertCmd.Flags().StringVar(&templatePath, "template", "", "Template workbook path")
	convertCmd.Flags().StringVar(&templateSheet, "template-sheet", "", "Template sheet name")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (\"-\" for stdout)")
	convertCmd.Flags().StringVar(&outputSheet, "output-sheet", "", "Output sheet name")
	convertCmd.Flags().StringVar(&format, "format", "", "Output format: xlsx, json")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().BoolVar(&randomDefaults, "random-defaults", false, "Pick default-fill choices at random")
	convertCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for --random-defaults")
	_ = convertCmd.MarkFlagRequired("entity")

	entitiesCmd := &cobra.Command{
		Use:   "entities",
		Short: "List the registered entity profiles",
		Args:  cobra.NoArgs,
		RunE:  runEntities,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to --config",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	})

	rootCmd.AddCommand(convertCmd, entitiesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.Template.Path = templatePath
	}
	if flags.Changed("template-sheet") {
		cfg.Template.Sheet = templateSheet
	}
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("output-sheet") {
		cfg.Output.Sheet = outputSheet
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	cfg.Output.Path = outputPathFor(cfg.Output, flags.Changed("output"))
	if flags.Changed("random-defaults") && randomDefaults {
		cfg.Defaults.Selection = string(scope1.SelectRandom)
	}
	if flags.Changed("seed") {
		cfg.Defaults.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("profiles") {
		cfg.Profiles = append(cfg.Profiles, profileFiles...)
	}
	return cfg, nil
}

// outputPathFor returns where results are written. JSON goes to stdout
// unless a path was chosen for it, so the xlsx default never receives JSON.
func outputPathFor(out config.OutputConfig, explicit bool) string {
	if out.Format == "json" && !explicit && out.Path == config.DefaultConfig().Output.Path {
		return "-"
	}
	return out.Path
}

// dateLayouts puts configured layouts ahead of the built-in ones.
func dateLayouts(cfg config.DatesConfig) []string {
	if len(cfg.Layouts) == 0 {
		return nil
	}
	layouts := make([]string, 0, len(cfg.Layouts)+len(parser.DefaultDateLayouts))
	layouts = append(layouts, cfg.Layouts...)
	return append(layouts, parser.DefaultDateLayouts...)
}

func newLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	var logger zerolog.Logger
	switch cfg.Format {
	case "json":
		logger = zerolog.New(os.Stderr)
	case "", "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %s (must be console or json)", cfg.Format)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

func newRegistry(files []string) (*scope1.Registry, error) {
	registry := scope1.DefaultRegistry()
	for _, path := range files {
		profiles, err := scope1.LoadProfiles(path)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			if err := registry.Register(p); err != nil {
				return nil, err
			}
		}
	}
	return registry, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()

	var selection scope1.Selection
	switch cfg.Defaults.Selection {
	case "", string(scope1.SelectFirst):
		selection = scope1.SelectFirst
	case string(scope1.SelectRandom):
		selection = scope1.SelectRandom
	default:
		return fmt.Errorf("invalid selection: %s (must be first or random)", cfg.Defaults.Selection)
	}

	switch cfg.Output.Format {
	case "xlsx", "json":
	default:
		return fmt.Errorf("invalid format: %s (must be xlsx or json)", cfg.Output.Format)
	}

	registry, err := newRegistry(cfg.Profiles)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	opts := scope1.DefaultOptions()
	opts.Selection = selection
	opts.Seed = cfg.Defaults.Seed
	opts.DateLayouts = dateLayouts(cfg.Dates)
	opts.Logger = logger

	job := scope1.Job{
		Entity:        entity,
		InputPath:     args[0],
		TemplatePath:  cfg.Template.Path,
		TemplateSheet: cfg.Template.Sheet,
		Registry:      registry,
	}
	logger.Info().Str("entity", entity).Str("input", job.InputPath).Str("template", job.TemplatePath).Msg("starting conversion")

	res, err := scope1.Run(job, opts)
	if err != nil {
		logger.Error().Err(err).Msg("conversion failed")
		return fmt.Errorf("conversion failed: %w", err)
	}

	for _, d := range res.Stats.Dropped {
		if d.Rows > 0 {
			logger.Info().Str("column", d.Column).Str("drop", string(d.Drop)).Int("rows", d.Rows).Msg("dropped rows")
		}
	}
	logger.Info().Int("input_rows", res.Stats.InputRows).Int("output_rows", res.Stats.OutputRows).Msg("normalized")

	if err := writeResult(res, cfg.Output); err != nil {
		logger.Error().Err(err).Msg("write failed")
		return err
	}
	if cfg.Output.Path != "-" {
		logger.Info().Str("output", cfg.Output.Path).Msg("wrote output")
	}
	return nil
}

func writeResult(res *scope1.Result, out config.OutputConfig) error {
	toStdout := out.Path == "" || out.Path == "-"

	if out.Format == "json" {
		if !toStdout {
			return output.SaveJSON(out.Path, res.Table, pretty)
		}
		data, err := output.ToJSON(res.Table, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if toStdout {
		if err := output.WriteXLSX(os.Stdout, res.Table, out.Sheet); err != nil {
			return scope1.NewIOError("write", "-", err)
		}
		return nil
	}
	return output.SaveXLSX(out.Path, res.Table, out.Sheet)
}

func runEntities(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg.Profiles)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	for _, id := range registry.Entities() {
		p, _ := registry.Lookup(id)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, p.Description)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Save(configPath, config.DefaultConfig()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
