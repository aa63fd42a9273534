package main

import (
	"tubedeck/internal/mainui"
	"tubedeck/internal/notify"
	"tubedeck/internal/settings"
	"tubedeck/internal/tui/formhost"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change Main UI settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the Main UI settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				d, _ := a.presenter(cmd).Show()
				defer d.Dismiss()
				return settings.WriteText(cmd.OutOrStdout(), d)
			},
		},
		&cobra.Command{
			Use:   "select <category> <option>",
			Short: "Select an option, e.g. select \"Playlists style\" Rows",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, _ := a.presenter(cmd).Show()
				defer d.Dismiss()

				ci, oi, err := d.Lookup(args[0], args[1])
				if err != nil {
					return err
				}
				if err := d.Select(ci, oi); err != nil {
					return err
				}
				return settings.WriteText(cmd.OutOrStdout(), d)
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit the Main UI settings in a form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				d, _ := a.presenter(cmd).Show()
				return formhost.NewForm(d).Run(cmd.Context())
			},
		},
	)
	return cmd
}

// presenter builds a Main UI presenter that prints notices to the command's
// output. There is no browse screen to refresh outside the TUI.
func (a *app) presenter(cmd *cobra.Command) *mainui.Presenter {
	notices := notify.Writer{W: cmd.OutOrStdout(), Strings: a.strings}
	controller := settings.NewController(nil, a.logger)
	return mainui.NewPresenter(a.prefs, controller, mainui.DetachedBrowse{}, notices, a.strings, a.logger)
}

