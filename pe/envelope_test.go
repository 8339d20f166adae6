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
	"testing"

	"github.com/nuts-foundation/vpsubmit/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	t.Run("JWT", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte(fixture.JWTVC))
		require.NoError(t, err)
		assert.Equal(t, fixture.JWTVC, envelope.Interface)
	})
	t.Run("JSON object", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte(`{"id": "value"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"id": "value"}, envelope.Interface)
	})
	t.Run("JSON array", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte(`[{"id": "value"}]`))
		require.NoError(t, err)
		assert.Equal(t, []interface{}{map[string]interface{}{"id": "value"}}, envelope.Interface)
	})
	t.Run("invalid JSON", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte(`{"id": `))
		assert.ErrorIs(t, err, ErrInvalidEnvelope)
		assert.Nil(t, envelope)
	})
	t.Run("not a JWT", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte(`eyINVALID`))
		assert.EqualError(t, err, "invalid Presentation Exchange envelope: not a compact JWT")
		assert.Nil(t, envelope)
	})
	t.Run("empty", func(t *testing.T) {
		envelope, err := ParseEnvelope([]byte("  "))
		assert.EqualError(t, err, "invalid Presentation Exchange envelope: empty vp_token")
		assert.Nil(t, envelope)
	})
}
