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

// Package prism parses PRISM DIDs, both in short form (did:prism:<hash>) and long form (did:prism:<hash>:<encoded state>).
// The long form embeds the DID's create operation, which allows reading the initial public keys without resolving the DID.
package prism

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/nuts-foundation/go-did/did"
	"github.com/nuts-foundation/vpsubmit/core"
)

// ErrInvalidDID is returned when the input is not a valid PRISM DID.
var ErrInvalidDID = errors.New("invalid PRISM DID")

// ErrHashMismatch is returned when the encoded state of a long-form DID doesn't hash to the DID's suffix.
var ErrHashMismatch = errors.New("encoded state does not match DID suffix")

// DID is a parsed PRISM DID.
type DID struct {
	// ID is the DID as parsed by the generic DID parser.
	ID did.DID
	// Suffix is the hex encoded SHA-256 hash of the initial state, which identifies the DID.
	Suffix string
	// EncodedState is the base64url encoded create operation, empty for short-form DIDs.
	EncodedState string
	// PublicKeys holds the keys from the create operation, empty for short-form DIDs.
	PublicKeys []PublicKey
	// Services holds the services from the create operation, empty for short-form DIDs.
	Services []Service
}

// Parse parses a PRISM DID. For long-form DIDs it verifies that the encoded state matches the suffix
// and decodes the public keys and services from the create operation.
func Parse(input string) (*DID, error) {
	parsed, err := did.ParseDID(input)
	if err != nil {
		return nil, core.WrapError(ErrInvalidDID, err)
	}
	if parsed.Method != MethodName {
		return nil, core.WrapErrorf(ErrInvalidDID, "unsupported method: %s", parsed.Method)
	}
	parts := strings.Split(parsed.ID, ":")
	if len(parts) > 2 {
		return nil, core.WrapErrorf(ErrInvalidDID, "too many segments")
	}
	result := DID{ID: *parsed, Suffix: parts[0]}
	if suffix, err := hex.DecodeString(result.Suffix); err != nil || len(suffix) != sha256.Size {
		return nil, core.WrapErrorf(ErrInvalidDID, "suffix is not a hex encoded SHA-256 hash")
	}
	if len(parts) == 1 {
		return &result, nil
	}
	result.EncodedState = parts[1]
	state, err := base64.RawURLEncoding.DecodeString(result.EncodedState)
	if err != nil {
		return nil, core.WrapErrorf(ErrInvalidDID, "encoded state: %w", err)
	}
	hash := sha256.Sum256(state)
	if !strings.EqualFold(hex.EncodeToString(hash[:]), result.Suffix) {
		return nil, core.WrapError(ErrInvalidDID, ErrHashMismatch)
	}
	result.PublicKeys, result.Services, err = decodeCreateOperation(state)
	if err != nil {
		return nil, core.WrapErrorf(ErrInvalidDID, "encoded state: %w", err)
	}
	return &result, nil
}

// String returns the DID as given to Parse.
func (d DID) String() string {
	return d.ID.String()
}

// IsLongForm returns true if the DID embeds its create operation.
func (d DID) IsLongForm() bool {
	return d.EncodedState != ""
}

// Canonical returns the short form of the DID.
func (d DID) Canonical() string {
	return "did:" + MethodName + ":" + d.Suffix
}

// PublicKeysByUsage returns the public keys with the given usage.
func (d DID) PublicKeysByUsage(usage KeyUsage) []PublicKey {
	var result []PublicKey
	for _, key := range d.PublicKeys {
		if key.Usage == usage {
			result = append(result, key)
		}
	}
	return result
}

// FindPublicKey returns the first public key with the given usage and key data, or nil if there's none.
func (d DID) FindPublicKey(usage KeyUsage, data []byte) *PublicKey {
	for _, key := range d.PublicKeysByUsage(usage) {
		if bytes.Equal(key.Data, data) {
			result := key
			return &result
		}
	}
	return nil
}
