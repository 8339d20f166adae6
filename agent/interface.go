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

	"github.com/nuts-foundation/vpsubmit/pe"
)

// SubmissionsPath is the path of the OID4VP submission endpoint, relative to the agent's address.
const SubmissionsPath = "oid4vp/submissions"

// VPTokenField is the form field holding the vp_token.
const VPTokenField = "vp_token"

// PresentationSubmissionField is the form field holding the JSON encoded presentation submission.
const PresentationSubmissionField = "presentation_submission"

// Client submits verifiable presentation responses to an OID4VP agent.
type Client interface {
	// SubmitPresentation posts the vp_token and presentation submission to the agent.
	// The agent's response is returned regardless of its status code, an error is only returned when the
	// submission is invalid or the agent could not be reached.
	SubmitPresentation(ctx context.Context, vpToken string, submission pe.PresentationSubmission) (*SubmissionResponse, error)
}

// SubmissionResponse is the response of the agent to a submission.
type SubmissionResponse struct {
	StatusCode int
	Body       []byte
}
