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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURLPaths(t *testing.T) {
	assert.Equal(t, "", JoinURLPaths())
	assert.Equal(t, "http://localhost:8085/oid4vp/submissions", JoinURLPaths("http://localhost:8085", "oid4vp/submissions"))
	assert.Equal(t, "http://localhost:8085/oid4vp/submissions", JoinURLPaths("http://localhost:8085/", "/oid4vp/submissions"))
	assert.Equal(t, "http://localhost:8085/cloud-agent/oid4vp", JoinURLPaths("http://localhost:8085/cloud-agent", "", "oid4vp"))
}

func TestParseAgentURL(t *testing.T) {
	t.Run("localhost is allowed without strict mode", func(t *testing.T) {
		actual, err := ParseAgentURL("http://localhost:8085", false)

		require.NoError(t, err)
		assert.Equal(t, "localhost:8085", actual.Host)
	})
	t.Run("invalid scheme", func(t *testing.T) {
		_, err := ParseAgentURL("ftp://localhost", false)

		assert.EqualError(t, err, "scheme must be http or https")
	})
	t.Run("missing host", func(t *testing.T) {
		_, err := ParseAgentURL("http://", false)

		assert.EqualError(t, err, "URL missing host")
	})
	t.Run("strict mode", func(t *testing.T) {
		t.Run("ok", func(t *testing.T) {
			actual, err := ParseAgentURL("https://agent.nuts.nl", true)

			require.NoError(t, err)
			assert.Equal(t, "agent.nuts.nl", actual.Host)
		})
		t.Run("reserved host", func(t *testing.T) {
			_, err := ParseAgentURL("https://localhost:8085", true)

			assert.EqualError(t, err, "hostname is reserved")
		})
		t.Run("IP address", func(t *testing.T) {
			_, err := ParseAgentURL("https://127.0.0.1", true)

			assert.EqualError(t, err, "hostname is IP")
		})
		t.Run("plain HTTP", func(t *testing.T) {
			_, err := ParseAgentURL("http://agent.nuts.nl", true)

			assert.EqualError(t, err, "scheme must be https")
		})
	})
}

func TestParsePublicURL(t *testing.T) {
	_, err := ParsePublicURL("agent.nuts.nl")
	assert.EqualError(t, err, "URL missing scheme")

	_, err = ParsePublicURL("https://agent.example.com")
	assert.EqualError(t, err, "hostname is reserved")
}
