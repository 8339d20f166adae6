/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/holder"
	holderCmd "github.com/nuts-foundation/vpsubmit/holder/cmd"
	"github.com/nuts-foundation/vpsubmit/stubagent"
	stubAgentCmd "github.com/nuts-foundation/vpsubmit/stubagent/cmd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var stdOutWriter io.Writer = os.Stdout

// Allows overriding the agent client to aid testing
var clientCreator = func(config core.ClientConfig) (agent.Client, error) {
	return agent.NewHTTPClient(config)
}

// shutdownTimeout is the time the stub agent gets to finish in-flight requests when stopped.
const shutdownTimeout = 5 * time.Second

func createRootCommand(config *core.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vpsubmit",
		Short: "Submits a verifiable presentation response to an OID4VP agent.",
		Long: "Submits the configured vp_token and presentation submission to the OID4VP submission endpoint " +
			"of an agent (" + core.DefaultAddress + "/" + agent.SubmissionsPath + " by default) " +
			"and prints the HTTP status code and response body. Running without a command is the same as running 'submit'.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(cmd.Flags()); err != nil {
				return fmt.Errorf("unable to load config: %w", err)
			}
			return config.ConfigureLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submit(cmd.Context(), *config, cmd.OutOrStdout())
		},
	}
}

func createSubmitCommand(config *core.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submits the vp_token and presentation submission to the agent, and prints the response.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submit(cmd.Context(), *config, cmd.OutOrStdout())
		},
	}
}

func createStubAgentCommand(config *core.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stub-agent",
		Short: "Runs a local stand-in for the agent's submission endpoint, until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agentConfig := stubagent.DefaultConfig()
			if err := config.Unmarshal(stubagent.ConfigKey, &agentConfig); err != nil {
				return err
			}
			return runStubAgent(cmd.Context(), agentConfig)
		},
	}
}

func createPrintConfigCommand(config *core.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Current config")
			cmd.Println(config.PrintConfig())
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

// CreateCommand creates the command with all subcommands.
func CreateCommand() *cobra.Command {
	config := core.NewClientConfig()
	command := createRootCommand(config)
	command.SetOut(stdOutWriter)
	command.PersistentFlags().AddFlagSet(core.FlagSet())
	command.PersistentFlags().AddFlagSet(holderCmd.FlagSet())
	command.PersistentFlags().AddFlagSet(stubAgentCmd.FlagSet())
	command.AddCommand(createSubmitCommand(config))
	command.AddCommand(createInspectCommand(config))
	command.AddCommand(createStubAgentCommand(config))
	command.AddCommand(createPrintConfigCommand(config))
	command.AddCommand(createVersionCommand())
	return command
}

// Execute creates the command and executes it with the given context, which cancels the running operation when done.
func Execute(ctx context.Context) error {
	command := CreateCommand()
	return command.ExecuteContext(ctx)
}

func loadHolder(config core.ClientConfig) (*holder.Holder, holder.SubmissionConfig, error) {
	holderConfig := holder.DefaultConfig()
	submissionConfig := holder.DefaultSubmissionConfig()
	if err := config.Unmarshal(holder.ConfigKey, &holderConfig); err != nil {
		return nil, submissionConfig, err
	}
	if err := config.Unmarshal(holder.SubmissionConfigKey, &submissionConfig); err != nil {
		return nil, submissionConfig, err
	}
	h, err := holder.New(holderConfig)
	return h, submissionConfig, err
}

// submit posts the vp_token and presentation submission to the agent and prints the status code and body of the response,
// each on its own line. The response isn't interpreted, unless an expected status code is configured:
// then another status code fails the command after printing.
func submit(ctx context.Context, config core.ClientConfig, out io.Writer) error {
	h, submissionConfig, err := loadHolder(config)
	if err != nil {
		return err
	}
	if err := h.CheckDID(); err != nil {
		logrus.WithError(err).WithField(core.LogFieldDID, h.ID()).Warn("Holder DID is invalid, submitting anyway")
	} else if _, err := h.CheckAssertionKey(); err != nil {
		entry := logrus.WithError(err).WithField(core.LogFieldDID, h.ID())
		if errors.Is(err, holder.ErrKeyNotInDID) {
			entry.Warn("Holder key does not match holder DID, submitting anyway")
		} else {
			entry.Debug("Holder key not checked")
		}
	}
	client, err := clientCreator(config)
	if err != nil {
		return err
	}
	submission := submissionConfig.Build()
	response, err := client.SubmitPresentation(ctx, h.VPToken(), submission)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "%d\n%s\n", response.StatusCode, response.Body); err != nil {
		return err
	}
	return core.TestResponseCode(config.ExpectStatus, response.StatusCode, response.Body, logrus.WithField(core.LogFieldSubmissionID, submission.Id))
}

func runStubAgent(ctx context.Context, config stubagent.Config) error {
	stub, err := stubagent.New(config)
	if err != nil {
		return err
	}
	if err := stub.Start(); err != nil {
		_ = stub.Shutdown(context.Background())
		return err
	}
	<-ctx.Done()
	logrus.WithField("accepted", stub.Accepted()).
		WithField("rejected", stub.Rejected()).
		Info("Stopping stub agent")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return stub.Shutdown(shutdownCtx)
}
