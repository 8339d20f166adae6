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
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope is a parsed vp_token, which the descriptor map of a presentation submission is evaluated against.
type Envelope struct {
	// Interface is the vp_token in the shape JSONPath expressions are evaluated on:
	// a string for a compact JWT, a map for a JSON object and a slice for a JSON array.
	Interface interface{}
}

// ParseEnvelope parses a vp_token: either a compact JWT (VC or VP), a JSON object or a JSON array of these.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty vp_token", ErrInvalidEnvelope)
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		var asInterface interface{}
		if err := json.Unmarshal([]byte(trimmed), &asInterface); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
		}
		return &Envelope{Interface: asInterface}, nil
	}
	if strings.Count(trimmed, ".") != 2 {
		return nil, fmt.Errorf("%w: not a compact JWT", ErrInvalidEnvelope)
	}
	return &Envelope{Interface: trimmed}, nil
}
