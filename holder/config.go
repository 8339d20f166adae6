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

package holder

import (
	"github.com/google/uuid"
	"github.com/nuts-foundation/vpsubmit/fixture"
	"github.com/nuts-foundation/vpsubmit/pe"
)

// ConfigKey is the key of the holder config in the config map.
const ConfigKey = "holder"

// SubmissionConfigKey is the key of the submission config in the config map.
const SubmissionConfigKey = "submission"

// Config holds the identity and credential material of the holder.
type Config struct {
	// DID is the DID of the holder.
	DID string `koanf:"did"`
	// KeyHex is the hex encoded secp256k1 private key of the holder's assertion (issuing) key.
	KeyHex string `koanf:"keyhex"`
	// VPToken is the token sent as vp_token. Ignored when VPTokenFile is set.
	VPToken string `koanf:"vptoken"`
	// VPTokenFile is a file containing the vp_token.
	VPTokenFile string `koanf:"vptokenfile"`
}

// DefaultConfig returns the demo holder.
func DefaultConfig() Config {
	return Config{
		DID:     fixture.HolderDID,
		KeyHex:  fixture.HolderAssertionPrivateKeyHex,
		VPToken: fixture.JWTVC,
	}
}

// SubmissionConfig describes the presentation submission that accompanies the vp_token.
type SubmissionConfig struct {
	// ID is the ID of the submission.
	ID string `koanf:"id"`
	// RandomID makes every submission get a new random (UUID v4) ID, instead of ID.
	RandomID bool `koanf:"randomid"`
	// DefinitionID is the ID of the presentation definition the submission answers.
	DefinitionID string `koanf:"definitionid"`
	// DescriptorID is the ID of the input descriptor the vp_token is mapped to.
	DescriptorID string `koanf:"descriptorid"`
	// Format is the claim format of the credential in the vp_token.
	Format string `koanf:"format"`
	// Path is the JSONPath of the credential in the vp_token.
	Path string `koanf:"path"`
}

// DefaultSubmissionConfig returns the submission of the demo: the JWT VC at the root of the vp_token.
func DefaultSubmissionConfig() SubmissionConfig {
	return SubmissionConfig{
		ID:           fixture.SubmissionID,
		DefinitionID: fixture.DefinitionID,
		DescriptorID: fixture.InputDescriptorID,
		Format:       pe.VerifiableCredentialJWTFormat,
		Path:         pe.RootPath,
	}
}

// Build creates the presentation submission.
func (c SubmissionConfig) Build() pe.PresentationSubmission {
	id := c.ID
	if c.RandomID {
		id = uuid.NewString()
	}
	return pe.NewPresentationSubmission(id, c.DefinitionID, pe.InputDescriptorMappingObject{
		Id:     c.DescriptorID,
		Format: c.Format,
		Path:   c.Path,
	})
}
