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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/holder"
	"github.com/nuts-foundation/vpsubmit/pe"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const formatFlag = "format"

// inspection describes what submit would send, without sending it.
type inspection struct {
	Endpoint   string                    `json:"endpoint" yaml:"endpoint"`
	Holder     holderInspection          `json:"holder" yaml:"holder"`
	Credential *holder.CredentialClaims  `json:"credential,omitempty" yaml:"credential,omitempty"`
	Errors     []string                  `json:"errors,omitempty" yaml:"errors,omitempty"`
	Submission pe.PresentationSubmission `json:"presentation_submission" yaml:"presentation_submission"`
}

type holderInspection struct {
	DID          string          `json:"did" yaml:"did"`
	Method       string          `json:"method" yaml:"method"`
	Canonical    string          `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	LongForm     bool            `json:"longForm" yaml:"longForm"`
	PublicKeys   []keyInspection `json:"publicKeys,omitempty" yaml:"publicKeys,omitempty"`
	AssertionKey string          `json:"assertionKey,omitempty" yaml:"assertionKey,omitempty"`
}

type keyInspection struct {
	ID        string `json:"id" yaml:"id"`
	Usage     string `json:"usage" yaml:"usage"`
	Curve     string `json:"curve" yaml:"curve"`
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

func createInspectCommand(config *core.ClientConfig) *cobra.Command {
	result := &cobra.Command{
		Use:   "inspect",
		Short: "Prints the holder, credential and presentation submission that would be submitted, without submitting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString(formatFlag)
			h, submissionConfig, err := loadHolder(*config)
			if err != nil {
				return err
			}
			if err := h.CheckDID(); err != nil {
				return err
			}
			client, err := agent.NewHTTPClient(*config)
			if err != nil {
				return err
			}
			return printInspection(cmd.OutOrStdout(), format, inspect(h, submissionConfig, client.SubmissionsURL()))
		},
	}
	result.Flags().String(formatFlag, "yaml", "Output format (json, yaml)")
	return result
}

func inspect(h *holder.Holder, submissionConfig holder.SubmissionConfig, endpoint string) inspection {
	result := inspection{
		Endpoint:   endpoint,
		Submission: submissionConfig.Build(),
		Holder: holderInspection{
			DID:    h.ID(),
			Method: h.DID().Method,
		},
	}
	if prismDID := h.PrismDID(); prismDID != nil {
		result.Holder.Canonical = prismDID.Canonical()
		result.Holder.LongForm = prismDID.IsLongForm()
		for _, key := range prismDID.PublicKeys {
			result.Holder.PublicKeys = append(result.Holder.PublicKeys, keyInspection{
				ID:        key.ID,
				Usage:     key.Usage.String(),
				Curve:     key.Curve,
				PublicKey: hex.EncodeToString(key.Data),
			})
		}
	}
	if key, err := h.CheckAssertionKey(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Holder.AssertionKey = key.ID
	}
	if claims, err := h.CredentialClaims(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Credential = claims
		if now := time.Now(); !claims.Validity().Contains(now) {
			result.Errors = append(result.Errors, fmt.Sprintf("credential is not valid at %s", now.Format(time.RFC3339)))
		}
	}
	if err := result.Submission.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
	return result
}

func printInspection(out io.Writer, format string, result inspection) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid format: '%s'", format)
	}
}
