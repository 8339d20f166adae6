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

// Package fixture holds the credential material of the demo holder: a long-form PRISM DID, its assertion key
// and a JWT university degree credential issued to it, together with the presentation definition it answers.
package fixture

// HolderDID is the long-form PRISM DID of the holder.
const HolderDID = "did:prism:73196107e806b084d44339c847a3ae8dd279562f23895583f62cc91a2ee5b8fe:CnsKeRI8CghtYXN0ZXItMBABSi4KCXNlY3AyNTZrMRIhArrplJNfQYxthryRU87XdODy-YWUh5mqrvIfAdoZFeJBEjkKBWtleS0wEAJKLgoJc2VjcDI1NmsxEiEC8rsFplfYvRLazdWWi3LNR1gaAQXb-adVhZacJT4ntwE"

// HolderAssertionPrivateKeyHex is the hex encoded secp256k1 private key of the holder's 'key-0' (issuing) key.
const HolderAssertionPrivateKeyHex = "2902637d412190fb08f5d0e0b2efc1eefae8060ae151e7951b69afbecbdd452e"

// IssuerDID is the short-form PRISM DID of the issuer of JWTVC.
const IssuerDID = "did:prism:ffd7cf5a0b73c82e1f16b41e1afcd8c9b0b87ca4f22c11328eacf546b611b1fc"

// JWTVC is a UniversityDegreeCredential in JWT format, issued by IssuerDID to HolderDID.
const JWTVC = "eyJ0eXAiOiJKV1QiLCJhbGciOiJFUzI1NksifQ.eyJpc3MiOiJkaWQ6cHJpc206ZmZkN2NmNWEwYjczYzgyZTFmMTZiNDFlMWFmY2Q4YzliMGI4N2NhNGYyMmMxMTMyOGVhY2Y1NDZiNjExYjFmYyIsInN1YiI6ImRpZDpwcmlzbTo3MzE5NjEwN2U4MDZiMDg0ZDQ0MzM5Yzg0N2EzYWU4ZGQyNzk1NjJmMjM4OTU1ODNmNjJjYzkxYTJlZTViOGZlOkNuc0tlUkk4Q2dodFlYTjBaWEl0TUJBQlNpNEtDWE5sWTNBeU5UWnJNUkloQXJycGxKTmZRWXh0aHJ5UlU4N1hkT0R5LVlXVWg1bXFydklmQWRvWkZlSkJFamtLQld0bGVTMHdFQUpLTGdvSmMyVmpjREkxTm1zeEVpRUM4cnNGcGxmWXZSTGF6ZFdXaTNMTlIxZ2FBUVhiLWFkVmhaYWNKVDRudHdFIiwibmJmIjoxNzI3MzQwNTYyLCJ2YyI6eyJjcmVkZW50aWFsU3ViamVjdCI6eyJmaXJzdE5hbWUiOiJBbGljZSIsImdyYWRlIjozLjIsImRlZ3JlZSI6IkNoZW1pY2FsRW5naW5lZXJpbmciLCJpZCI6ImRpZDpwcmlzbTo3MzE5NjEwN2U4MDZiMDg0ZDQ0MzM5Yzg0N2EzYWU4ZGQyNzk1NjJmMjM4OTU1ODNmNjJjYzkxYTJlZTViOGZlOkNuc0tlUkk4Q2dodFlYTjBaWEl0TUJBQlNpNEtDWE5sWTNBeU5UWnJNUkloQXJycGxKTmZRWXh0aHJ5UlU4N1hkT0R5LVlXVWg1bXFydklmQWRvWkZlSkJFamtLQld0bGVTMHdFQUpLTGdvSmMyVmpjREkxTm1zeEVpRUM4cnNGcGxmWXZSTGF6ZFdXaTNMTlIxZ2FBUVhiLWFkVmhaYWNKVDRudHdFIn0sInR5cGUiOlsiVmVyaWZpYWJsZUNyZWRlbnRpYWwiLCJVbml2ZXJzaXR5RGVncmVlQ3JlZGVudGlhbCJdLCJAY29udGV4dCI6WyJodHRwczpcL1wvd3d3LnczLm9yZ1wvMjAxOFwvY3JlZGVudGlhbHNcL3YxIl0sImlzc3VlciI6ImRpZDpwcmlzbTpmZmQ3Y2Y1YTBiNzNjODJlMWYxNmI0MWUxYWZjZDhjOWIwYjg3Y2E0ZjIyYzExMzI4ZWFjZjU0NmI2MTFiMWZjIn19.dVPyCW_-Q6iO-EYIvRRrIYddebw6KJtSaeeFolyKznaCkDoY_X9LKxVU-xY6YO1xwbV6dnXHXsvcey3SR5oVng"

// SubmissionID is the ID of the presentation submission.
const SubmissionID = "32f54163-7166-48f1-93d8-ff217bdb0653"

// DefinitionID is the ID of the presentation definition the submission answers.
const DefinitionID = "3e216a58-2118-45ea-8db0-8798d01bb252"

// InputDescriptorID is the ID of the input descriptor the credential is mapped to.
const InputDescriptorID = "university_degree"
