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

package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/nuts-foundation/vpsubmit/agent/log"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/pe"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient is a Client that talks to the agent over HTTP.
type HTTPClient struct {
	config core.ClientConfig
	client core.HTTPRequestDoer
}

// NewHTTPClient creates a new HTTPClient for the agent at the configured address.
func NewHTTPClient(config core.ClientConfig) (*HTTPClient, error) {
	if _, err := core.ParseAgentURL(config.GetAddress(), config.Strictmode); err != nil {
		return nil, fmt.Errorf("invalid agent address: %w", err)
	}
	client, err := core.CreateHTTPClient(config)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		config: config,
		client: client,
	}, nil
}

// SubmissionsURL returns the URL submissions are posted to.
func (c HTTPClient) SubmissionsURL() string {
	return core.JoinURLPaths(c.config.GetAddress(), SubmissionsPath)
}

func (c HTTPClient) SubmitPresentation(ctx context.Context, vpToken string, submission pe.PresentationSubmission) (*SubmissionResponse, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}
	submissionJSON, err := json.Marshal(submission)
	if err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set(VPTokenField, vpToken)
	form.Set(PresentationSubmissionField, string(submissionJSON))
	body := form.Encode()

	endpoint := c.SubmissionsURL()
	logger := log.Logger().
		WithField(core.LogFieldEndpoint, endpoint).
		WithField(core.LogFieldSubmissionID, submission.Id).
		WithField(core.LogFieldDefinitionID, submission.DefinitionId)

	attempts := c.config.Retries
	if attempts == 0 {
		attempts = 1
	}
	var result *SubmissionResponse
	err = retry.Do(func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
		if err != nil {
			return retry.Unrecoverable(err)
		}
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response, err := c.client.Do(request)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Unrecoverable(err)
			}
			return err
		}
		defer response.Body.Close()
		responseBody, err := io.ReadAll(response.Body)
		if err != nil {
			return fmt.Errorf("unable to read response body: %w", err)
		}
		result = &SubmissionResponse{StatusCode: response.StatusCode, Body: responseBody}
		return nil
	},
		retry.Attempts(attempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WithError(err).WithField(core.LogFieldAttempt, n+1).Warn("Submission failed, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to submit presentation to %s: %w", endpoint, err)
	}
	logger.WithField(core.LogFieldStatusCode, result.StatusCode).Debug("Submitted presentation")
	return result, nil
}
