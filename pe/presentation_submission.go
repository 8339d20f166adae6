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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/pe/schema"
)

// ErrInvalidEnvelope is returned when a vp_token can't be used as Presentation Exchange envelope.
var ErrInvalidEnvelope = errors.New("invalid Presentation Exchange envelope")

// ErrPathNotFound is returned when the path of a descriptor map entry doesn't select a value in the vp_token.
var ErrPathNotFound = errors.New("descriptor path not found in vp_token")

// ErrFormatMismatch is returned when the value a descriptor map entry points to can't be decoded in the entry's format.
var ErrFormatMismatch = errors.New("descriptor format does not match vp_token")

// ErrNotACredential is returned when a descriptor map entry points to a presentation instead of a credential.
var ErrNotACredential = errors.New("descriptor path does not reference a credential")

// ParsePresentationSubmission validates the given JSON and parses it into a PresentationSubmission.
// It returns an error if the JSON is invalid or doesn't match the JSON schema for a PresentationSubmission.
func ParsePresentationSubmission(raw []byte) (*PresentationSubmission, error) {
	if err := validateJSON(raw); err != nil {
		return nil, err
	}
	var result PresentationSubmission
	err := json.Unmarshal(raw, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// NewPresentationSubmission creates a PresentationSubmission for the given definition from the given mappings.
func NewPresentationSubmission(id string, definitionID string, mappings ...InputDescriptorMappingObject) PresentationSubmission {
	return PresentationSubmission{
		Id:            id,
		DefinitionId:  definitionID,
		DescriptorMap: append([]InputDescriptorMappingObject{}, mappings...),
	}
}

// Validate checks the PresentationSubmission against the JSON schema for a PresentationSubmission.
func (s PresentationSubmission) Validate() error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return validateJSON(data)
}

func validateJSON(raw []byte) error {
	enveloped := `{"presentation_submission":` + string(raw) + `}`
	if err := schema.Validate([]byte(enveloped), schema.PresentationSubmission); err != nil {
		return fmt.Errorf("invalid presentation submission: %w", err)
	}
	return nil
}

// Resolve maps each input descriptor of the submission to the credential its descriptor map entry points to in the envelope.
// Credentials must be JWT VCs, either directly in the envelope or (using path_nested) inside a JWT VP.
// The returned errors match ErrInvalidEnvelope, ErrPathNotFound, ErrFormatMismatch or ErrNotACredential.
func (s PresentationSubmission) Resolve(envelope Envelope) (map[string]vc.VerifiableCredential, error) {
	switch envelope.Interface.(type) {
	case string, []interface{}, map[string]interface{}:
	default:
		return nil, ErrInvalidEnvelope
	}
	result := make(map[string]vc.VerifiableCredential, len(s.DescriptorMap))
	for _, mapping := range s.DescriptorMap {
		credential, err := resolveCredential("", mapping, envelope.Interface)
		if err != nil {
			return nil, fmt.Errorf("input descriptor '%s': %w", mapping.Id, err)
		}
		result[mapping.Id] = *credential
	}
	return result, nil
}

// resolveCredential evaluates the path of the mapping against value. parentPath is the path of the enclosing presentation,
// if the mapping is a path_nested entry.
func resolveCredential(parentPath string, mapping InputDescriptorMappingObject, value interface{}) (*vc.VerifiableCredential, error) {
	fullPath := mapping.Path
	if parentPath != "" {
		fullPath = parentPath + "/" + mapping.Path
	}
	target, err := jsonpath.Get(mapping.Path, value)
	if err != nil {
		return nil, core.WrapErrorf(ErrPathNotFound, "%s: %w", fullPath, err)
	}
	token, ok := target.(string)
	if !ok {
		return nil, core.WrapErrorf(ErrFormatMismatch, "value of Go type '%T' at path '%s' is not a compact JWT", target, fullPath)
	}
	switch mapping.Format {
	case VerifiableCredentialJWTFormat:
		if mapping.PathNested != nil {
			return nil, core.WrapErrorf(ErrFormatMismatch, "path_nested at path '%s' requires format '%s'", fullPath, VerifiablePresentationJWTFormat)
		}
		credential, err := vc.ParseVerifiableCredential(token)
		if err != nil {
			return nil, core.WrapErrorf(ErrFormatMismatch, "invalid JWT credential at path '%s': %w", fullPath, err)
		}
		return credential, nil
	case VerifiablePresentationJWTFormat:
		if mapping.PathNested == nil {
			return nil, core.WrapErrorf(ErrNotACredential, "path '%s' references a presentation", fullPath)
		}
		presentation, err := vc.ParseVerifiablePresentation(token)
		if err != nil {
			return nil, core.WrapErrorf(ErrFormatMismatch, "invalid JWT presentation at path '%s': %w", fullPath, err)
		}
		// nested paths are evaluated against the JWT claims, e.g. $.vp.verifiableCredential[0]
		claims, err := presentation.JWT().AsMap(context.Background())
		if err != nil {
			return nil, core.WrapErrorf(ErrFormatMismatch, "invalid JWT presentation at path '%s': %w", fullPath, err)
		}
		return resolveCredential(fullPath, *mapping.PathNested, claims)
	default:
		return nil, core.WrapErrorf(ErrFormatMismatch, "unsupported format '%s' at path '%s'", mapping.Format, fullPath)
	}
}
