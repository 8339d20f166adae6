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
	"os"
	"path"
	"testing"
	"time"

	"github.com/nuts-foundation/vpsubmit/did/prism"
	"github.com/nuts-foundation/vpsubmit/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otherKeyHex = "0000000000000000000000000000000000000000000000000000000000000001"

func TestNew(t *testing.T) {
	t.Run("demo holder", func(t *testing.T) {
		h, err := New(DefaultConfig())

		require.NoError(t, err)
		assert.NoError(t, h.CheckDID())
		assert.Equal(t, fixture.HolderDID, h.ID())
		assert.Equal(t, fixture.HolderDID, h.DID().String())
		require.NotNil(t, h.PrismDID())
		assert.True(t, h.PrismDID().IsLongForm())
		assert.Equal(t, fixture.JWTVC, h.VPToken())
	})
	t.Run("non-PRISM DID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = "did:example:123"

		h, err := New(cfg)

		require.NoError(t, err)
		assert.Nil(t, h.PrismDID())
	})
	t.Run("vp_token from file", func(t *testing.T) {
		file := path.Join(t.TempDir(), "vp_token.jwt")
		require.NoError(t, os.WriteFile(file, []byte(fixture.JWTVC+"\n"), 0600))
		cfg := DefaultConfig()
		cfg.VPToken = "ignored"
		cfg.VPTokenFile = file

		h, err := New(cfg)

		require.NoError(t, err)
		assert.Equal(t, fixture.JWTVC, h.VPToken())
	})
	t.Run("error - vp_token file does not exist", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.VPTokenFile = path.Join(t.TempDir(), "missing.jwt")

		_, err := New(cfg)

		assert.ErrorContains(t, err, "unable to read vp_token file")
	})
	t.Run("error - empty vp_token", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.VPToken = "  "

		_, err := New(cfg)

		assert.ErrorIs(t, err, ErrEmptyVPToken)
	})
	t.Run("vp_token is kept as configured", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.VPToken = " " + fixture.JWTVC + "\n"

		h, err := New(cfg)

		require.NoError(t, err)
		assert.Equal(t, " "+fixture.JWTVC+"\n", h.VPToken())
	})
	t.Run("invalid DID is reported by CheckDID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = "not a DID"

		h, err := New(cfg)

		require.NoError(t, err)
		assert.Equal(t, "not a DID", h.ID())
		assert.Nil(t, h.DID())
		assert.Nil(t, h.PrismDID())
		assert.ErrorIs(t, h.CheckDID(), ErrInvalidDID)
		assert.Equal(t, fixture.JWTVC, h.VPToken())
	})
	t.Run("PRISM DID with tampered state is reported by CheckDID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = "did:prism:" + "00" + fixture.HolderDID[len("did:prism:")+2:]

		h, err := New(cfg)

		require.NoError(t, err)
		err = h.CheckDID()
		assert.ErrorIs(t, err, ErrInvalidDID)
		assert.ErrorIs(t, err, prism.ErrInvalidDID)
		assert.ErrorIs(t, err, prism.ErrHashMismatch)
	})
	t.Run("error - key is not hex", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.KeyHex = "zz"

		_, err := New(cfg)

		assert.ErrorContains(t, err, "invalid holder key")
	})
	t.Run("error - key has invalid length", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.KeyHex = "0102"

		_, err := New(cfg)

		assert.EqualError(t, err, "invalid holder key: expected 32 bytes, got 2")
	})
}

func TestHolder_CheckAssertionKey(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, err := New(DefaultConfig())
		require.NoError(t, err)

		key, err := h.CheckAssertionKey()

		require.NoError(t, err)
		assert.Equal(t, "key-0", key.ID)
		assert.Equal(t, prism.IssuingKeyUsage, key.Usage)
		assert.Equal(t, "02f2bb05a657d8bd12dacdd5968b72cd47581a0105dbf9a75585969c253e27b701", hex.EncodeToString(h.PublicKey()))
	})
	t.Run("key is not in DID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.KeyHex = otherKeyHex
		h, err := New(cfg)
		require.NoError(t, err)

		key, err := h.CheckAssertionKey()

		assert.ErrorIs(t, err, ErrKeyNotInDID)
		assert.Nil(t, key)
	})
	t.Run("no key", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.KeyHex = ""
		h, err := New(cfg)
		require.NoError(t, err)

		_, err = h.CheckAssertionKey()

		assert.ErrorIs(t, err, ErrNoKey)
		assert.Nil(t, h.PublicKey())
	})
	t.Run("invalid DID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = "not a DID"
		h, err := New(cfg)
		require.NoError(t, err)

		_, err = h.CheckAssertionKey()

		assert.ErrorIs(t, err, ErrInvalidDID)
	})
	t.Run("short-form DID", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = fixture.IssuerDID
		h, err := New(cfg)
		require.NoError(t, err)

		_, err = h.CheckAssertionKey()

		assert.ErrorIs(t, err, ErrNotLongForm)
	})
}

func TestHolder_CredentialClaims(t *testing.T) {
	t.Run("demo credential", func(t *testing.T) {
		h, err := New(DefaultConfig())
		require.NoError(t, err)

		claims, err := h.CredentialClaims()

		require.NoError(t, err)
		assert.Equal(t, fixture.IssuerDID, claims.Issuer)
		assert.Equal(t, fixture.HolderDID, claims.Subject)
		assert.True(t, claims.SubjectIsHolder)
		require.NotNil(t, claims.NotBefore)
		assert.Equal(t, int64(1727340562), claims.NotBefore.Unix())
		assert.Nil(t, claims.ExpiresAt)
		assert.Contains(t, claims.Types, "UniversityDegreeCredential")
		assert.True(t, claims.Validity().Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, claims.Validity().Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
	t.Run("subject is not the holder", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DID = "did:example:someone-else"
		h, err := New(cfg)
		require.NoError(t, err)

		claims, err := h.CredentialClaims()

		require.NoError(t, err)
		assert.False(t, claims.SubjectIsHolder)
	})
	t.Run("vp_token is not a credential", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.VPToken = "not-a-jwt"
		h, err := New(cfg)
		require.NoError(t, err)

		_, err = h.CredentialClaims()

		assert.ErrorContains(t, err, "vp_token is not a verifiable credential")
	})
}
