package main

import (
	"fmt"

	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/tui"
	"tubedeck/internal/tui/browse"
	"tubedeck/internal/tui/settingsdialog"
	"tubedeck/internal/tui/styles"
	"tubedeck/pkg/fileops"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// app holds what every command needs once flags are parsed.
type app struct {
	configPath  string
	catalogPath string
	locale      string
	debug       bool

	logger  *logging.AppLogger
	prefs   *config.MainUIData
	strings *i18n.Strings
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tubedeck",
		Short:         "Browse your subscriptions in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: "+config.ConfigPath()+")")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "subscriptions catalog (default: "+browse.CatalogPath()+")")
	root.PersistentFlags().StringVar(&a.locale, "locale", i18n.DefaultLocale, "language of labels and messages")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "write debug logs to the state directory")

	root.AddCommand(newSettingsCmd(a), newMCPCmd(a))
	return root
}

func (a *app) setup() error {
	a.logger = logging.NewAppLogger(logging.Options{Debug: a.debug})
	logging.SetDefault(a.logger)

	if a.configPath == "" {
		a.configPath = config.ConfigPath()
	}
	a.configPath = fileops.ExpandPath(a.configPath)
	prefs, err := config.OpenMainUIData(a.configPath)
	if err != nil {
		return err
	}
	a.prefs = prefs

	strings, err := i18n.Load(a.locale)
	if err != nil {
		return fmt.Errorf("loading %q strings: %w", a.locale, err)
	}
	a.strings = strings

	// the color scheme is read once; changes apply on the next start
	styles.Apply(prefs.ColorScheme())
	a.logger.Debug("Startup complete", "config", a.configPath, "scheme", prefs.ColorScheme().ID)
	return nil
}

// teardown runs after Execute whether or not the command failed.
func (a *app) teardown() {
	if a.logger != nil {
		logging.SetDefault(nil)
		a.logger.Close()
	}
}

func (a *app) runTUI() error {
	if a.catalogPath == "" {
		a.catalogPath = browse.CatalogPath()
	}
	catalog, err := browse.LoadCatalog(fileops.ExpandPath(a.catalogPath))
	if err != nil {
		return err
	}
	a.logger.Info("Catalog loaded", "channels", len(catalog.Channels), "playlists", len(catalog.Playlists))

	// the background query needs the terminal before the program takes it
	style := settingsdialog.DetectHelpStyle(settingsdialog.StyleQueryTimeout)
	a.logger.Debug("Help style detected", "style", style)

	model := tui.NewMainModel(a.prefs, catalog, a.strings, a.logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		a.logger.Error("Error running TUI program", "error", err)
		return err
	}
	return nil
}
