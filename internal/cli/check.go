package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/ui"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [password]",
		Short: "Evaluate the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive && !fromStdin {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || fromStdin {
				return checkCommand(cmd.InOrStdin(), cmd.OutOrStdout(), "")
			}
			return checkCommand(cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Prompts for passwords until ^C")
	checkCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	checkCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	checkCmd.MarkFlagsMutuallyExclusive("interactive", "stdin")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(in io.Reader, out io.Writer, password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	u, err := ui.New(out, output)
	if err != nil {
		return err
	}

	if fromStdin {
		password, err = readLine(in)
		if err != nil {
			return err
		}
		return u.Show(password)
	}

	if interactive {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err = runInteractiveSession(prompt, u); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
		}
		// No return of the error to avoid the default cobra error message
		return nil
	}

	return u.Show(password)
}

func runInteractiveSession(prompt promptui.Prompt, u *ui.UI) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = u.Show(result); err != nil {
			log.Error().Err(err).Msg("Error writing report")
		}
	}
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password from stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
