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

package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldDID is the log field key for a DID, e.g. the holder DID.
	LogFieldDID = "did"
	// LogFieldDIDMethod is the log field key for the method of a DID.
	LogFieldDIDMethod = "didMethod"
	// LogFieldKeyID is the log field key for the ID of a key listed in a DID.
	LogFieldKeyID = "keyID"

	// LogFieldCredentialID is the log field key for the ID of a Verifiable Credential.
	LogFieldCredentialID = "credentialID"
	// LogFieldCredentialType is the log field key for the type of a Verifiable Credential.
	LogFieldCredentialType = "credentialType"
	// LogFieldCredentialIssuer is the log field key for the issuer of a Verifiable Credential.
	LogFieldCredentialIssuer = "credentialIssuer"

	// LogFieldSubmissionID is the log field key for the ID of a presentation submission.
	LogFieldSubmissionID = "submissionID"
	// LogFieldDefinitionID is the log field key for the ID of the presentation definition a submission answers.
	LogFieldDefinitionID = "definitionID"
	// LogFieldInputDescriptorID is the log field key for the ID of an input descriptor.
	LogFieldInputDescriptorID = "inputDescriptorID"

	// LogFieldEndpoint is the log field key for the URL of a remote endpoint.
	LogFieldEndpoint = "endpoint"
	// LogFieldStatusCode is the log field key for the HTTP status code returned by a remote endpoint.
	LogFieldStatusCode = "statusCode"
	// LogFieldAttempt is the log field key for the attempt number of a retried operation.
	LogFieldAttempt = "attempt"
)
