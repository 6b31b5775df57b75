package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alvinbaena/pwd-meter/internal/client"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/net/context"
	"gopkg.in/yaml.v3"
)

var (
	remoteCmd = &cobra.Command{
		Use:   "remote [password]",
		Short: "Evaluate a password with a running pwd-meter server",
		Long: "Evaluate a password with a running pwd-meter server. By default the full report is fetched, " +
			"--evaluate only asks for the score, level and issues. With --bits no password is needed and the " +
			"server describes the crack time of that entropy.",
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("bits") {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("bits") {
				return crackTimeCommand(cmd.OutOrStdout(), remoteBits)
			}
			return remoteCommand(cmd.OutOrStdout(), args[0])
		},
	}
)

type crackTimeOutput struct {
	Bits      int    `json:"bits" yaml:"bits"`
	CrackTime string `json:"crack_time" yaml:"crack_time"`
}

//goland:noinspection GoUnhandledErrorResult
func init() {
	remoteCmd.Flags().StringVarP(&serverURL, "url", "u", "https://localhost:3100", "Base URL of the server")
	remoteCmd.Flags().BoolVarP(&insecure, "insecure", "k", false, "Skip TLS certificate verification, for servers using --self-tls")
	remoteCmd.Flags().StringVarP(&remoteOutput, "output", "o", "json", "Output format: json or yaml")
	remoteCmd.Flags().BoolVar(&evaluateOnly, "evaluate", false, "Only fetch the score, level and issues")
	remoteCmd.Flags().IntVar(&remoteBits, "bits", 0, "Describe the crack time of this many bits of entropy instead of evaluating a password")
	remoteCmd.MarkFlagsMutuallyExclusive("evaluate", "bits")

	rootCmd.AddCommand(remoteCmd)
}

func remoteCommand(out io.Writer, password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	c, err := client.New(serverURL, insecure)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if evaluateOnly {
		res, err := c.Evaluate(ctx, password)
		if err != nil {
			return err
		}
		return writeRemote(out, res)
	}

	report, err := c.Report(ctx, password)
	if err != nil {
		return err
	}

	return writeRemote(out, report)
}

func crackTimeCommand(out io.Writer, bits int) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	if bits < 0 {
		return errors.New("bits must be a non-negative integer")
	}

	c, err := client.New(serverURL, insecure)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	crackTime, err := c.CrackTime(ctx, bits)
	if err != nil {
		return err
	}

	return writeRemote(out, crackTimeOutput{Bits: bits, CrackTime: crackTime})
}

func writeRemote(out io.Writer, v interface{}) error {
	switch remoteOutput {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", remoteOutput)
	}
}
