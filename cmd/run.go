package cmd

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navcoord/cli"
	"github.com/grovetools/navcoord/config"
	"github.com/grovetools/navcoord/errors"
	"github.com/grovetools/navcoord/examples/homeprofile"
	"github.com/grovetools/navcoord/logging"
	"github.com/grovetools/navcoord/state"
	"github.com/grovetools/navcoord/tui"
	"github.com/grovetools/navcoord/tui/keymap"
	"github.com/grovetools/navcoord/tui/navtea"
	"github.com/grovetools/navcoord/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type runOptions struct {
	tab     string
	restore bool
}

func NewRunCmd() *cobra.Command {
	var ro runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Home/Profile navigation demo",
		Long: `Starts the demo in the alternate screen. Each tab owns its own stack:
enter opens a screen, b or esc goes back, p and h jump between tabs.

Examples:
  navdemo run
  navdemo run --tab profile
  # continue where the last session stopped
  navdemo run --restore`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd, "navdemo")

			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.NotATerminal("stdin")
			}

			cfg, err := cli.LoadConfig(opts)
			if err != nil {
				return err
			}

			app, modelOpts, err := buildApp(cfg, ro, logger)
			if err != nil {
				return err
			}
			model := app.Model(modelOpts...)
			defer model.Close()

			tui.InitializeTUI()
			p := tea.NewProgram(model, tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := watchConfig(ctx, opts.ConfigFile, logger, p); err != nil {
				logger.WithError(err).Debug("Config hot reload disabled")
			}

			// Bubble Tea owns the terminal until Run returns; only the file sink
			// keeps logging.
			prev := logging.SetTerminalOutput(io.Discard)
			defer logging.SetTerminalOutput(prev)

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&ro.tab, "tab", "", "Tab to start on: home, profile")
	cmd.Flags().BoolVar(&ro.restore, "restore", false, "Restore the last saved navigation state")
	return cmd
}

// buildApp creates the app, restores state when asked and derives the model
// options from cfg. An explicit --tab wins over the restored tab.
func buildApp(cfg *config.Config, ro runOptions, logger *logrus.Entry) (*homeprofile.App, []navtea.Option[homeprofile.Tab], error) {
	app := homeprofile.New(homeprofile.TabHome)

	opts := []navtea.Option[homeprofile.Tab]{
		navtea.WithKeys[homeprofile.Tab](keymap.FromConfig(cfg)),
		navtea.WithLogger[homeprofile.Tab](logger),
	}
	if cfg.TUI != nil && cfg.TUI.Theme != "" {
		opts = append(opts, navtea.WithTheme[homeprofile.Tab](theme.NewThemeWithName(cfg.TUI.Theme)))
	}

	if ro.restore || cfg.State.IsEnabled() {
		store, err := state.NewStore(cfg.State.Path)
		if err != nil {
			return nil, nil, err
		}
		if ro.restore {
			snap, err := store.Load()
			if err != nil {
				return nil, nil, err
			}
			if err := app.Restore(snap); err != nil {
				return nil, nil, err
			}
			logger.WithField("path", store.Path()).Debug("Restored navigation state")
		}
		if cfg.State.IsEnabled() {
			opts = append(opts, navtea.WithAutosave[homeprofile.Tab](app.Saver(store)))
		}
	}

	if ro.tab != "" {
		tab, err := app.TabCodec().Decode(ro.tab)
		if err != nil {
			return nil, nil, err
		}
		app.Tabs.SwitchTab(tab)
	}

	return app, opts, nil
}

// watchConfig forwards config reloads to the running program. An explicit
// --config is reloaded on its own; otherwise the global and project layers
// are watched and merged again on every change.
func watchConfig(ctx context.Context, configFile string, logger *logrus.Entry, p *tea.Program) error {
	onReload := func(cfg *config.Config, err error) {
		if err != nil {
			logger.WithError(err).Warn("Ignoring invalid config change")
			return
		}
		p.Send(navtea.ConfigReloadedMsg{Config: cfg})
	}

	var (
		w   *config.Watcher
		err error
	)
	if configFile != "" {
		w, err = config.WatchFile(configFile, 0, logger, onReload)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return cwdErr
		}
		w, err = config.WatchLayers(cwd, 0, logger, onReload)
	}
	if err != nil {
		return err
	}
	logger.WithField("files", w.Files()).Debug("Watching config")
	go w.Start(ctx)
	return nil
}
