package cli

import (
	"errors"
	"io"

	"github.com/alvinbaena/pwd-meter/internal/ui"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	liveCmd = &cobra.Command{
		Use:   "live",
		Short: "Open a live strength meter that updates as you type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return liveCommand(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

func liveCommand(in io.Reader, out io.Writer) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	if !util.IsTerminal(out) {
		return errors.New("the live meter needs a terminal, use the check command for piped output")
	}

	return ui.RunLive(in, out, ui.NewStyles(true))
}
