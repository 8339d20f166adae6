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
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/nuts-foundation/go-did/did"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/did/prism"
	"github.com/nuts-foundation/vpsubmit/holder/log"
)

// ErrNoKey is returned when a key operation is requested, but no key is configured.
var ErrNoKey = errors.New("no holder key configured")

// ErrNotLongForm is returned when the holder's keys can't be read from its DID, because it isn't a long-form PRISM DID.
var ErrNotLongForm = errors.New("holder DID is not a long-form PRISM DID")

// ErrKeyNotInDID is returned when the holder key isn't listed as assertion key in the holder's DID.
var ErrKeyNotInDID = errors.New("holder key is not an assertion key of the holder DID")

// ErrEmptyVPToken is returned when no vp_token is configured.
var ErrEmptyVPToken = errors.New("vp_token is empty")

// ErrInvalidDID is returned by CheckDID when the holder identifier can't be parsed as DID.
var ErrInvalidDID = errors.New("invalid holder DID")

// Holder is the party presenting its credential to the agent.
// Its identifier isn't part of the submission, so an unparsable identifier doesn't prevent submitting.
type Holder struct {
	id       string
	did      *did.DID
	prismDID *prism.DID
	didErr   error
	key      *secp256k1.PrivateKey
	vpToken  string
}

// New creates a Holder from the given config. The key is decoded and the vp_token is loaded, but nothing is sent or signed.
// The DID is parsed (and verified, if it's a long-form PRISM DID) as well, but a parse failure is only reported by CheckDID.
func New(config Config) (*Holder, error) {
	result := &Holder{id: config.DID}
	result.did, result.prismDID, result.didErr = parseDID(config.DID)
	var err error
	if config.KeyHex != "" {
		result.key, err = parsePrivateKey(config.KeyHex)
		if err != nil {
			return nil, err
		}
	}
	result.vpToken, err = loadVPToken(config)
	if err != nil {
		return nil, err
	}
	entry := log.Logger().WithField(core.LogFieldDID, result.id)
	if result.did != nil {
		entry = entry.WithField(core.LogFieldDIDMethod, result.did.Method)
	}
	entry.Debug("Loaded holder")
	return result, nil
}

func parseDID(id string) (*did.DID, *prism.DID, error) {
	parsedDID, err := did.ParseDID(id)
	if err != nil {
		return nil, nil, core.WrapError(ErrInvalidDID, err)
	}
	if parsedDID.Method != prism.MethodName {
		return parsedDID, nil, nil
	}
	prismDID, err := prism.Parse(id)
	if err != nil {
		return parsedDID, nil, core.WrapError(ErrInvalidDID, err)
	}
	return parsedDID, prismDID, nil
}

func parsePrivateKey(keyHex string) (*secp256k1.PrivateKey, error) {
	keyBytes, err := hex.DecodeString(strings.TrimSpace(keyHex))
	if err != nil {
		return nil, fmt.Errorf("invalid holder key: %w", err)
	}
	if len(keyBytes) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("invalid holder key: expected %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(keyBytes))
	}
	return secp256k1.PrivKeyFromBytes(keyBytes), nil
}

// loadVPToken returns the configured vp_token as-is. Content read from a file has its surrounding whitespace
// (e.g. a trailing newline) removed.
func loadVPToken(config Config) (string, error) {
	token := config.VPToken
	if config.VPTokenFile != "" {
		data, err := os.ReadFile(config.VPTokenFile)
		if err != nil {
			return "", fmt.Errorf("unable to read vp_token file: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrEmptyVPToken
	}
	return token, nil
}

// ID returns the holder identifier exactly as configured.
func (h Holder) ID() string {
	return h.id
}

// DID returns the parsed DID of the holder, or nil if the identifier isn't a valid DID.
func (h Holder) DID() *did.DID {
	return h.did
}

// CheckDID returns an error wrapping ErrInvalidDID if the holder identifier isn't a valid DID,
// or a long-form PRISM DID of which the encoded state doesn't match its suffix.
func (h Holder) CheckDID() error {
	return h.didErr
}

// PrismDID returns the parsed PRISM DID of the holder, or nil if the holder DID isn't a PRISM DID.
func (h Holder) PrismDID() *prism.DID {
	return h.prismDID
}

// VPToken returns the vp_token exactly as configured.
func (h Holder) VPToken() string {
	return h.vpToken
}

// PublicKey returns the compressed public key of the holder key, or nil if no key is configured.
func (h Holder) PublicKey() []byte {
	if h.key == nil {
		return nil
	}
	return h.key.PubKey().SerializeCompressed()
}

// CheckAssertionKey verifies that the holder key is listed as issuing (assertion) key in the long-form PRISM DID of the holder.
// It returns the matching key from the DID.
func (h Holder) CheckAssertionKey() (*prism.PublicKey, error) {
	if h.key == nil {
		return nil, ErrNoKey
	}
	if h.didErr != nil {
		return nil, h.didErr
	}
	if h.prismDID == nil || !h.prismDID.IsLongForm() {
		return nil, ErrNotLongForm
	}
	publicKey := h.PublicKey()
	match := h.prismDID.FindPublicKey(prism.IssuingKeyUsage, publicKey)
	if match == nil {
		return nil, fmt.Errorf("%w (public key: %s)", ErrKeyNotInDID, hex.EncodeToString(publicKey))
	}
	log.Logger().
		WithField(core.LogFieldDID, h.prismDID.Canonical()).
		WithField(core.LogFieldKeyID, match.ID).
		Debug("Holder key matches DID")
	return match, nil
}

// CredentialClaims holds the registered claims and credential info of a JWT vp_token.
type CredentialClaims struct {
	Issuer    string     `json:"issuer" yaml:"issuer"`
	Subject   string     `json:"subject" yaml:"subject"`
	NotBefore *time.Time `json:"notBefore,omitempty" yaml:"notBefore,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Types     []string   `json:"types" yaml:"types"`
	// SubjectIsHolder is true if the credential was issued to the holder DID.
	SubjectIsHolder bool `json:"subjectIsHolder" yaml:"subjectIsHolder"`
}

// Validity returns the period the credential is valid according to its nbf and exp claims.
func (c CredentialClaims) Validity() core.Period {
	result := core.Period{}
	if c.NotBefore != nil {
		result.Begin = *c.NotBefore
	}
	result.End = c.ExpiresAt
	return result
}

// Credential parses the vp_token as JWT Verifiable Credential. The signature is not verified.
func (h Holder) Credential() (*vc.VerifiableCredential, error) {
	credential, err := vc.ParseVerifiableCredential(h.vpToken)
	if err != nil {
		return nil, fmt.Errorf("vp_token is not a verifiable credential: %w", err)
	}
	return credential, nil
}

// CredentialClaims reads the claims of the vp_token, which must be a JWT Verifiable Credential.
// Neither the signature nor the validity period are verified.
func (h Holder) CredentialClaims() (*CredentialClaims, error) {
	credential, err := h.Credential()
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseString(h.vpToken, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, fmt.Errorf("vp_token is not a JWT: %w", err)
	}
	result := CredentialClaims{
		Issuer:          token.Issuer(),
		Subject:         token.Subject(),
		SubjectIsHolder: token.Subject() == h.id,
	}
	if nbf := token.NotBefore(); !nbf.IsZero() {
		result.NotBefore = &nbf
	}
	if exp := token.Expiration(); !exp.IsZero() {
		result.ExpiresAt = &exp
	}
	for _, credentialType := range credential.Type {
		result.Types = append(result.Types, credentialType.String())
	}
	log.Logger().
		WithField(core.LogFieldCredentialIssuer, result.Issuer).
		WithField(core.LogFieldCredentialType, result.Types).
		Debug("Parsed vp_token credential")
	return &result, nil
}
