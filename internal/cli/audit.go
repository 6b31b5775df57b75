package cli

import (
	"os"

	"github.com/alvinbaena/pwd-meter/internal/audit"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Evaluate every password of a file (one per line) and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Passwords input file, one password per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of workers. If omitted or less than 1, defaults to the number of logical processors of the machine.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing passwords file")
		}
	}(file)

	summary, err := audit.NewAuditor(file, threads).Run()
	if err != nil {
		return err
	}

	return summary.Print(os.Stdout)
}
