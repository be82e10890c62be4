package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/pencil/internal/config"
	"github.com/san-kum/pencil/internal/namelist"
	"github.com/san-kum/pencil/internal/param"
	"github.com/san-kum/pencil/internal/storage"
	"github.com/san-kum/pencil/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	preset     string
	// read selection
	param1         bool
	param2         bool
	verbose        bool
	conflictsQuiet bool
	noNest         bool
	noUnits        bool
	// export
	format  string
	outFile string
	// plot size
	width  int
	height int

	cfg *config.Config
)

// main runs the pencil CLI and exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pencil",
		Short:             "inspect Pencil Code data directories",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset read settings")

	paramCmd := &cobra.Command{
		Use:   "param",
		Short: "show simulation parameters",
		Args:  cobra.NoArgs,
		RunE:  showParams,
	}
	addReadFlags(paramCmd)

	getCmd := &cobra.Command{
		Use:   "get [name|module.name]",
		Short: "print one parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  getParam,
	}
	addReadFlags(getCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export parameters",
		Args:  cobra.NoArgs,
		RunE:  exportParams,
	}
	addReadFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", storage.FormatJSON, "output format (json, yaml)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse parameters interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readParams(cmd)
			if err != nil {
				return err
			}
			return viz.RunBrowser(p)
		},
	}
	addReadFlags(browseCmd)

	tsCmd := &cobra.Command{
		Use:   "ts",
		Short: "summarize the time series diagnostics",
		Args:  cobra.NoArgs,
		RunE:  summarizeSeries,
	}
	tsCmd.Flags().IntVar(&width, "width", config.DefaultPlotWidth, "output width")

	plotCmd := &cobra.Command{
		Use:   "plot [diagnostic...]",
		Short: "plot time series diagnostics",
		RunE:  plotSeries,
	}
	plotCmd.Flags().IntVar(&width, "width", config.DefaultPlotWidth, "plot width")
	plotCmd.Flags().IntVar(&height, "height", config.DefaultPlotHeight, "plot height")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [diagnostic]",
		Short: "frequency analysis of a time series diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSeries,
	}
	spectrumCmd.Flags().IntVar(&width, "width", config.DefaultPlotWidth, "plot width")
	spectrumCmd.Flags().IntVar(&height, "height", config.DefaultPlotHeight, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list read presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(paramCmd, getCmd, exportCmd, browseCmd, tsCmd, plotCmd, spectrumCmd, presetsCmd)
	return rootCmd
}

func addReadFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&param1, "param1", false, "read only start parameters (param.nml)")
	cmd.Flags().BoolVar(&param2, "param2", false, "read only run parameters (param2.nml)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "report nesting decisions")
	cmd.Flags().BoolVar(&conflictsQuiet, "conflicts-quiet", false, "do not report name conflicts")
	cmd.Flags().BoolVar(&noNest, "no-nest", false, "keep all parameters flat")
	cmd.Flags().BoolVar(&noUnits, "no-units", false, "do not derive physical units")
}

// setup loads the config file and applies the log level. Flags override
// config values only when set explicitly.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("width") {
		cfg.Plot.Width = width
	}
	if flags.Changed("height") {
		cfg.Plot.Height = height
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())
	return nil
}

// readOptions resolves read settings: config file, then preset, then flags.
func readOptions(cmd *cobra.Command) (param.Options, error) {
	rc := cfg.Read
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return param.Options{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		rc = *p
	}

	flags := cmd.Flags()
	if flags.Changed("param1") {
		rc.Param1 = param1
	}
	if flags.Changed("param2") {
		rc.Param2 = param2
	}
	if flags.Changed("verbose") {
		rc.Quiet = !verbose
	}
	if flags.Changed("conflicts-quiet") {
		rc.ConflictsQuiet = conflictsQuiet
	}
	if flags.Changed("no-nest") {
		rc.NestDict = !noNest
	}
	if flags.Changed("no-units") {
		rc.AppendUnits = !noUnits
	}

	opts := rc.Options()
	opts.Logger = logrus.StandardLogger()
	return opts, nil
}

func readParams(cmd *cobra.Command) (*param.Param, error) {
	opts, err := readOptions(cmd)
	if err != nil {
		return nil, err
	}
	logrus.WithField("dir", cfg.DataDir).Debug("reading parameters")
	return param.Read(cfg.DataDir, opts)
}

func showParams(cmd *cobra.Command, args []string) error {
	p, err := readParams(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.RenderParams(p))
	return nil
}

func getParam(cmd *cobra.Command, args []string) error {
	p, err := readParams(cmd)
	if err != nil {
		return err
	}

	var (
		v  namelist.Value
		ok bool
	)
	if module, name, nested := strings.Cut(args[0], "."); nested {
		v, ok = p.GroupValue(module, name)
	} else {
		v, ok = p.Get(args[0])
		if n := nestedNames(p, args[0]); !ok && n != "" {
			return fmt.Errorf("%s is nested, use one of: %s", args[0], n)
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s", param.ErrNotFound, args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func nestedNames(p *param.Param, name string) string {
	var names []string
	for _, g := range p.Groups() {
		if _, ok := p.GroupValue(g, name); ok {
			names = append(names, g+"."+name)
		}
	}
	return strings.Join(names, ", ")
}

func exportParams(cmd *cobra.Command, args []string) error {
	p, err := readParams(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := storage.ExportFile(outFile, format, p); err != nil {
			return err
		}
		logrus.WithField("file", outFile).Info("parameters exported")
		return nil
	}
	return storage.Export(cmd.OutOrStdout(), format, p)
}

func summarizeSeries(cmd *cobra.Command, args []string) error {
	ts, err := storage.New(cfg.DataDir).LoadTimeSeries()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.SummarizeSeries(ts, cfg.Plot.Width/2))
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	ts, err := st.LoadTimeSeries()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = cfg.Plot.Diagnostics
	}

	fmt.Fprintf(cmd.OutOrStdout(), "data: %s\n", st.Dir())
	fmt.Fprintf(cmd.OutOrStdout(), "samples: %d\n\n", len(ts.Rows))

	graph, err := viz.PlotSeries(ts, names, cfg.Plot.Width, cfg.Plot.Height)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), graph)
	return nil
}

func analyzeSeries(cmd *cobra.Command, args []string) error {
	ts, err := storage.New(cfg.DataDir).LoadTimeSeries()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "frequency analysis: %s\n\n", args[0])
	out, err := viz.PlotSpectrum(ts, args[0], cfg.Plot.Width, cfg.Plot.Height)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
