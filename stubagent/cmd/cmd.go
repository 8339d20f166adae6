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

package cmd

import (
	"github.com/nuts-foundation/vpsubmit/stubagent"
	"github.com/spf13/pflag"
)

// FlagSet contains flags relevant for the stub agent.
func FlagSet() *pflag.FlagSet {
	defs := stubagent.DefaultConfig()
	flags := pflag.NewFlagSet("stubagent", pflag.ContinueOnError)
	flags.String(stubagent.ConfigKey+".address", defs.Address, "Address the stub agent listens on.")
	flags.Float64(stubagent.ConfigKey+".ratelimit", defs.RateLimit, "Maximum number of submissions per second the stub agent accepts, 0 means unlimited.")
	flags.String(stubagent.ConfigKey+".storagefile", defs.StorageFile, "BBolt database file accepted submissions are stored in. If not set, submissions are kept in memory.")
	flags.Bool(stubagent.ConfigKey+".logbodies", defs.LogBodies, "Log submitted presentation submissions and the replies of the stub agent. The vp_token is never logged.")
	return flags
}
