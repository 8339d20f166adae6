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

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// TrustStore holds the CA certificates trusted for HTTPS connections.
type TrustStore struct {
	CertPool     *x509.CertPool
	certificates []*x509.Certificate
}

// Certificates returns the certificates in the trust store.
func (store *TrustStore) Certificates() []*x509.Certificate {
	return store.certificates[:]
}

// LoadTrustStore creates a x509 certificate pool based on a truststore file.
// Blocks other than certificates are skipped, but the file must contain at least one certificate.
func LoadTrustStore(trustStoreFile string) (*TrustStore, error) {
	data, err := os.ReadFile(trustStoreFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read trust store (file=%s): %w", trustStoreFile, err)
	}
	certificates, err := parseCertificates(data)
	if err != nil {
		return nil, fmt.Errorf("invalid trust store (file=%s): %w", trustStoreFile, err)
	}
	if len(certificates) == 0 {
		return nil, fmt.Errorf("invalid trust store (file=%s): no certificates", trustStoreFile)
	}
	certPool := x509.NewCertPool()
	for _, certificate := range certificates {
		certPool.AddCert(certificate)
	}
	return &TrustStore{
		CertPool:     certPool,
		certificates: certificates,
	}, nil
}

func parseCertificates(data []byte) ([]*x509.Certificate, error) {
	var certificates []*x509.Certificate
	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			if len(certificates) > 0 {
				// trailing non-PEM data, e.g. whitespace
				break
			}
			return nil, errors.New("unable to decode PEM encoded data")
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		certificate, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse certificate: %w", err)
		}
		certificates = append(certificates, certificate)
	}
	return certificates, nil
}
