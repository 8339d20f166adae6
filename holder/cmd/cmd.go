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
	"github.com/nuts-foundation/vpsubmit/holder"
	"github.com/spf13/pflag"
)

// FlagSet contains flags relevant for the holder and the presentation submission.
func FlagSet() *pflag.FlagSet {
	defs := holder.DefaultConfig()
	submission := holder.DefaultSubmissionConfig()
	flags := pflag.NewFlagSet("holder", pflag.ContinueOnError)
	flags.String(holder.ConfigKey+".did", defs.DID, "DID of the holder.")
	flags.String(holder.ConfigKey+".keyhex", defs.KeyHex, "Hex encoded secp256k1 private key of the holder's assertion key. Only used to check it belongs to the holder DID.")
	flags.String(holder.ConfigKey+".vptoken", defs.VPToken, "The vp_token to submit, e.g. a JWT verifiable credential.")
	flags.String(holder.ConfigKey+".vptokenfile", defs.VPTokenFile, "File containing the vp_token to submit. Takes precedence over holder.vptoken.")
	flags.String(holder.SubmissionConfigKey+".id", submission.ID, "ID of the presentation submission.")
	flags.Bool(holder.SubmissionConfigKey+".randomid", submission.RandomID, "If set, a random UUID is used as ID of the presentation submission.")
	flags.String(holder.SubmissionConfigKey+".definitionid", submission.DefinitionID, "ID of the presentation definition the submission answers.")
	flags.String(holder.SubmissionConfigKey+".descriptorid", submission.DescriptorID, "ID of the input descriptor the vp_token is mapped to.")
	flags.String(holder.SubmissionConfigKey+".format", submission.Format, "Claim format of the credential in the vp_token.")
	flags.String(holder.SubmissionConfigKey+".path", submission.Path, "JSONPath of the credential in the vp_token.")
	return flags
}
