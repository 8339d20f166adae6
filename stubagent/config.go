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

package stubagent

// ConfigKey is the key of the stub agent config in the config map.
const ConfigKey = "stubagent"

// Config holds the config of the stub agent.
type Config struct {
	// Address is the address the stub agent listens on.
	Address string `koanf:"address"`
	// RateLimit is the number of submissions accepted per second. 0 disables rate limiting.
	RateLimit float64 `koanf:"ratelimit"`
	// StorageFile is the BBolt database accepted submissions are stored in. If empty, they're kept in memory.
	StorageFile string `koanf:"storagefile"`
	// LogBodies enables logging of the submitted form fields (with the vp_token redacted) and the replies.
	LogBodies bool `koanf:"logbodies"`
}

// DefaultConfig returns the default config: the address the cloud agent listens on in the demo setup.
func DefaultConfig() Config {
	return Config{
		Address: "localhost:8085",
	}
}
