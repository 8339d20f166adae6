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

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Protobuf field numbers of the PRISM node's AtalaOperation messages that are read from the encoded state.
const (
	atalaOperationCreateDIDField   protowire.Number = 1
	createDIDOperationDIDDataField protowire.Number = 1
	didCreationDataPublicKeysField protowire.Number = 2
	didCreationDataServicesField   protowire.Number = 3
	publicKeyIDField               protowire.Number = 1
	publicKeyUsageField            protowire.Number = 2
	publicKeyECKeyDataField        protowire.Number = 8
	publicKeyCompressedECKeyField  protowire.Number = 9
	ecKeyDataCurveField            protowire.Number = 1
	ecKeyDataXField                protowire.Number = 2
	ecKeyDataYField                protowire.Number = 3
	compressedECKeyDataCurveField  protowire.Number = 1
	compressedECKeyDataDataField   protowire.Number = 2
	serviceIDField                 protowire.Number = 1
	serviceTypeField               protowire.Number = 2
	serviceServiceEndpointField    protowire.Number = 3
)

// SECP256K1Curve is the curve name PRISM uses for secp256k1 keys.
const SECP256K1Curve = "secp256k1"

var errNoCreateOperation = errors.New("not a create DID operation")

// field is a decoded length-delimited or varint protobuf field.
type field struct {
	number protowire.Number
	bytes  []byte
	varint uint64
}

// decodeFields decodes the top-level fields of a protobuf message. Groups and fixed-width fields are skipped.
func decodeFields(message []byte) ([]field, error) {
	var result []field
	for len(message) > 0 {
		number, wireType, n := protowire.ConsumeTag(message)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		message = message[n:]
		switch wireType {
		case protowire.BytesType:
			value, m := protowire.ConsumeBytes(message)
			if m < 0 {
				return nil, protowire.ParseError(m)
			}
			result = append(result, field{number: number, bytes: value})
			n = m
		case protowire.VarintType:
			value, m := protowire.ConsumeVarint(message)
			if m < 0 {
				return nil, protowire.ParseError(m)
			}
			result = append(result, field{number: number, varint: value})
			n = m
		default:
			n = protowire.ConsumeFieldValue(number, wireType, message)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
		}
		message = message[n:]
	}
	return result, nil
}

// firstBytesField returns the value of the first length-delimited field with the given number.
func firstBytesField(fields []field, number protowire.Number) ([]byte, bool) {
	for _, f := range fields {
		if f.number == number && f.bytes != nil {
			return f.bytes, true
		}
	}
	return nil, false
}

func decodeCreateOperation(state []byte) ([]PublicKey, []Service, error) {
	operation, err := decodeFields(state)
	if err != nil {
		return nil, nil, err
	}
	createDID, ok := firstBytesField(operation, atalaOperationCreateDIDField)
	if !ok {
		return nil, nil, errNoCreateOperation
	}
	createFields, err := decodeFields(createDID)
	if err != nil {
		return nil, nil, err
	}
	didData, ok := firstBytesField(createFields, createDIDOperationDIDDataField)
	if !ok {
		return nil, nil, errNoCreateOperation
	}
	didDataFields, err := decodeFields(didData)
	if err != nil {
		return nil, nil, err
	}
	var keys []PublicKey
	var services []Service
	for _, f := range didDataFields {
		switch f.number {
		case didCreationDataPublicKeysField:
			key, err := decodePublicKey(f.bytes)
			if err != nil {
				return nil, nil, fmt.Errorf("public key %d: %w", len(keys), err)
			}
			keys = append(keys, *key)
		case didCreationDataServicesField:
			service, err := decodeService(f.bytes)
			if err != nil {
				return nil, nil, fmt.Errorf("service %d: %w", len(services), err)
			}
			services = append(services, *service)
		}
	}
	return keys, services, nil
}

func decodePublicKey(message []byte) (*PublicKey, error) {
	fields, err := decodeFields(message)
	if err != nil {
		return nil, err
	}
	var result PublicKey
	for _, f := range fields {
		switch f.number {
		case publicKeyIDField:
			result.ID = string(f.bytes)
		case publicKeyUsageField:
			result.Usage = KeyUsage(f.varint)
		case publicKeyCompressedECKeyField:
			keyFields, err := decodeFields(f.bytes)
			if err != nil {
				return nil, err
			}
			curve, _ := firstBytesField(keyFields, compressedECKeyDataCurveField)
			data, _ := firstBytesField(keyFields, compressedECKeyDataDataField)
			result.Curve = string(curve)
			result.Data = data
		case publicKeyECKeyDataField:
			keyFields, err := decodeFields(f.bytes)
			if err != nil {
				return nil, err
			}
			curve, _ := firstBytesField(keyFields, ecKeyDataCurveField)
			x, _ := firstBytesField(keyFields, ecKeyDataXField)
			y, hasY := firstBytesField(keyFields, ecKeyDataYField)
			result.Curve = string(curve)
			if result.Curve == SECP256K1Curve && hasY {
				result.Data = compressPoint(x, y)
			} else {
				result.Data = x
			}
		}
	}
	if result.ID == "" {
		return nil, errors.New("missing key id")
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("key %s: missing key data", result.ID)
	}
	return &result, nil
}

func decodeService(message []byte) (*Service, error) {
	fields, err := decodeFields(message)
	if err != nil {
		return nil, err
	}
	var result Service
	for _, f := range fields {
		switch f.number {
		case serviceIDField:
			result.ID = string(f.bytes)
		case serviceTypeField:
			result.Type = string(f.bytes)
		case serviceServiceEndpointField:
			result.ServiceEndpoint = string(f.bytes)
		}
	}
	return &result, nil
}

// compressPoint converts an uncompressed EC point to its SEC1 compressed form.
func compressPoint(x []byte, y []byte) []byte {
	if len(x) > 32 {
		x = x[len(x)-32:]
	}
	result := make([]byte, 33)
	result[0] = 0x02
	if len(y) > 0 && y[len(y)-1]&1 == 1 {
		result[0] = 0x03
	}
	copy(result[33-len(x):], x)
	return result
}
