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

package pe

import "github.com/nuts-foundation/go-did/vc"

// VerifiableCredentialJWTFormat is the format of a compact JWT Verifiable Credential, as registered in the DIF claim format registry.
const VerifiableCredentialJWTFormat = vc.JWTCredentialProofFormat

// VerifiablePresentationJWTFormat is the format of a compact JWT Verifiable Presentation.
const VerifiablePresentationJWTFormat = vc.JWTPresentationProofFormat

// RootPath is the JSONPath selecting the complete vp_token.
const RootPath = "$"

// PresentationSubmission describes how the credentials in the vp_token match the input descriptors of a presentation definition.
type PresentationSubmission struct {
	// Id is the id of the presentation submission, which is a UUID
	Id string `json:"id" yaml:"id"`
	// DefinitionId is the id of the presentation definition that this submission is for
	DefinitionId string `json:"definition_id" yaml:"definition_id"`
	// DescriptorMap is a list of mappings from input descriptors to credentials
	DescriptorMap []InputDescriptorMappingObject `json:"descriptor_map" yaml:"descriptor_map"`
}

// InputDescriptorMappingObject maps an input descriptor to the credential found at Path, in the given Format.
type InputDescriptorMappingObject struct {
	Id         string                        `json:"id" yaml:"id"`
	Path       string                        `json:"path" yaml:"path"`
	PathNested *InputDescriptorMappingObject `json:"path_nested,omitempty" yaml:"path_nested,omitempty"`
	Format     string                        `json:"format" yaml:"format"`
}
