package main

import (
	"context"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"colman"
	"colman/api"
	nt "colman/entity"
	"colman/logger"
	"colman/provinces"
	"colman/store/duck"
	"colman/store/file"
	"colman/store/lite"
	"colman/tui"
	"colman/util"
)

type fieldLogger interface {
	nt.Logger
	WithFields(ctx context.Context, kv ...any) context.Context
}

var (
	cfg = defaultConfig()

	cfgFile      string
	settingsRoot string
	storeKind    string
	listen       string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:          "colman",
	Short:        "Browse the Java provinces through a grid whose columns are remembered",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {

		if cfgFile != "" {
			err = util.LoadConfig(cfg, cfgFile)
			if err != nil {
				return
			}
		}

		flags := cmd.Flags()
		if flags.Changed("settings-root") {
			cfg.Settings.Root = settingsRoot
		}
		if flags.Changed("store") {
			cfg.Settings.Kind = storeKind
		}
		if flags.Changed("listen") {
			cfg.Api.Listen = listen
		}
		if flags.Changed("debug") {
			cfg.Log.Debug = debug
		}
		return
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample-config <path>",
	Short: "Write a sample config to path unless one is there already",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		written, err := util.SampleConfig(sampleConfig, args[0], 0644)
		if err != nil {
			return
		}
		if !written {
			cmd.Printf("%s exists, leaving it be\n", args[0])
			return
		}
		cmd.Printf("wrote sample config to %s\n", args[0])
		return
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a yaml config file")
	flags.StringVar(&settingsRoot, "settings-root", "", "folder for grid settings files")
	flags.StringVar(&storeKind, "store", "", "grid settings store: file, duck or sqlite")
	flags.StringVar(&listen, "listen", "", "address for the control api, e.g. localhost:8087")
	flags.BoolVar(&debug, "debug", false, "log debug messages, json log format only")

	rootCmd.AddCommand(sampleCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(ctx context.Context) (err error) {

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logFile, err := util.OpenLog(cfg.Log.File, 0644)
	if err != nil {
		return
	}
	defer util.CloseLog(logFile)

	lgr, flush := newLogger(logFile, cfg.Log)
	defer flush()

	ctx = lgr.WithFields(ctx, "run_id", uuid.NewString()[:8])
	lgr.Info(ctx, "starting", "store", cfg.Settings.Kind, "listen", cfg.Api.Listen)

	rows, store, closeStores, err := openStores(cfg.Settings, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to open stores", err)
		return
	}
	defer closeStores()

	err = rows.LoadRows(provinces.Fields, provinces.Rows())
	if err != nil {
		return
	}

	grd := cfg.Grid.New(ctx, lgr)
	ftr := &tui.Footer{}

	mgr := cfg.Manager().New(ctx, grd, store, ftr, lgr, provinces.GridId)
	provinces.Register(mgr)

	err = mgr.Initialize()
	if err != nil {
		return
	}

	prg := tea.NewProgram(tui.New(ctx, mgr, grd, ftr, rows, lgr))

	if cfg.Api.Listen != "" {
		go func() {
			err := api.New(mgr, prg, lgr).Serve(ctx, cfg.Api.Listen)
			if err != nil {
				lgr.Error(ctx, "control api stopped", err)
			}
		}()
	}

	_, err = prg.Run()
	err = errors.Wrapf(err, "failed to run program")

	lgr.Info(ctx, "stopping")
	return
}

// openStores opens the duck db holding the sample rows and the store for
// grid settings, which is the same duck db when kind is duck.
func openStores(scfg SettingsConfig, lgr nt.Logger) (rows *duck.Duck, store colman.Store, closeAll func(), err error) {

	switch scfg.Kind {
	case storeDuck:
		rows, err = duck.New(scfg.Path, lgr)
		if err != nil {
			return
		}
		store = rows
		closeAll = rows.Close
		return

	case storeSqlite:
		var lt *lite.Lite
		lt, err = lite.New(scfg.Path, lgr)
		if err != nil {
			return
		}
		rows, err = duck.New("", lgr)
		if err != nil {
			lt.Close()
			return
		}
		store = lt
		closeAll = func() {
			rows.Close()
			lt.Close()
		}
		return

	case storeFile, "":
		rows, err = duck.New("", lgr)
		if err != nil {
			return
		}
		store = file.New(scfg.Root, lgr)
		closeAll = rows.Close
		return
	}

	err = errors.Errorf("unknown settings store kind: %q", scfg.Kind)
	return
}

func newLogger(w io.Writer, lcfg LogConfig) (lgr fieldLogger, flush func()) {

	if lcfg.Format == formatJson {
		zpr := logger.New(w, lcfg.Debug)
		return zpr, func() { _ = zpr.Sync() }
	}

	return &sabot.Sabot{Writer: w}, func() {}
}
