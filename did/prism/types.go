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

package prism

import "fmt"

// MethodName is the DID method name of PRISM DIDs.
const MethodName = "prism"

// KeyUsage is the purpose of a public key listed in a PRISM DID.
type KeyUsage int32

const (
	UnknownKeyUsage KeyUsage = iota
	MasterKeyUsage
	IssuingKeyUsage
	KeyAgreementKeyUsage
	AuthenticationKeyUsage
	RevocationKeyUsage
	CapabilityInvocationKeyUsage
	CapabilityDelegationKeyUsage
)

var keyUsageNames = map[KeyUsage]string{
	UnknownKeyUsage:              "unknown",
	MasterKeyUsage:               "master",
	IssuingKeyUsage:              "issuing",
	KeyAgreementKeyUsage:         "keyAgreement",
	AuthenticationKeyUsage:       "authentication",
	RevocationKeyUsage:           "revocation",
	CapabilityInvocationKeyUsage: "capabilityInvocation",
	CapabilityDelegationKeyUsage: "capabilityDelegation",
}

func (u KeyUsage) String() string {
	if name, ok := keyUsageNames[u]; ok {
		return name
	}
	return fmt.Sprintf("KeyUsage(%d)", int32(u))
}

// MarshalText renders the usage by its name.
func (u KeyUsage) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// PublicKey is a public key listed in the create operation of a PRISM DID.
type PublicKey struct {
	ID    string   `json:"id" yaml:"id"`
	Usage KeyUsage `json:"usage" yaml:"usage"`
	Curve string   `json:"curve" yaml:"curve"`
	// Data holds the compressed EC point for secp256k1 keys, the raw key bytes for other curves.
	Data []byte `json:"data" yaml:"data"`
}

// Service is a service listed in the create operation of a PRISM DID.
type Service struct {
	ID              string `json:"id" yaml:"id"`
	Type            string `json:"type" yaml:"type"`
	ServiceEndpoint string `json:"serviceEndpoint" yaml:"serviceEndpoint"`
}
