package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/velvet/internal/config"
	"github.com/katalvlaran/velvet/internal/logging"
	"github.com/katalvlaran/velvet/parser"
	"github.com/katalvlaran/velvet/runner"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *slog.Logger
	out     io.Writer
	errOut  io.Writer

	// executor replaces runner.ExecExecutor when set.
	executor runner.Executor
}

// newRootCmd builds the command tree writing to out and errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "velvetgraph",
		Short:         "Inspect velvet de Bruijn graphs and run the velvet assembler",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	pf.Bool("skip-reads", false, "do not load read tracking (NR blocks)")
	pf.IntSlice("reads", nil, "comma separated interesting read ids")
	pf.IntSlice("nodes", nil, "comma separated interesting node ids")
	pf.Int("prefilter", 0, "grep-style prefilter context in lines, 0 disables")

	root.AddCommand(
		a.statsCmd(),
		a.neighboursCmd(),
		a.walkCmd(),
		a.cyclesCmd(),
		a.sequencesCmd(),
		a.namesCmd(),
		a.assembleCmd(),
	)
	return root
}

// setup loads the configuration, lets changed flags override it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.Log.Format, _ = f.GetString("log-format")
	}
	if f.Changed("skip-reads") {
		cfg.Parse.SkipReadTracking, _ = f.GetBool("skip-reads")
	}
	if f.Changed("reads") {
		cfg.Parse.InterestingReadIDs, _ = f.GetIntSlice("reads")
	}
	if f.Changed("nodes") {
		cfg.Parse.InterestingNodeIDs, _ = f.GetIntSlice("nodes")
	}
	if f.Changed("prefilter") {
		cfg.Parse.PrefilterContext, _ = f.GetInt("prefilter")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.errOut)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// parseOptions turns the parse section into parser options.
func (a *app) parseOptions() []parser.Option {
	p := a.cfg.Parse
	opts := []parser.Option{parser.WithLogger(a.log)}
	if p.SkipReadTracking {
		opts = append(opts, parser.WithSkipReadTracking())
	}
	if len(p.InterestingReadIDs) > 0 {
		opts = append(opts, parser.WithInterestingReadIDs(p.InterestingReadIDs...))
	}
	if len(p.InterestingNodeIDs) > 0 {
		opts = append(opts, parser.WithInterestingNodeIDs(p.InterestingNodeIDs...))
	}
	if p.PrefilterContext > 0 {
		opts = append(opts, parser.WithPrefilter(parser.ContextFilter{Context: p.PrefilterContext}))
	}
	return opts
}

func (a *app) runner() *runner.Runner {
	opts := []runner.Option{
		runner.WithLogger(a.log),
		runner.WithBinaries(a.cfg.Runner.Velveth, a.cfg.Runner.Velvetg),
		runner.WithTempRoot(a.cfg.Runner.TempRoot),
	}
	if a.executor != nil {
		opts = append(opts, runner.WithExecutor(a.executor))
	}
	return runner.New(opts...)
}
