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

// Package schema contains the JSON schema of a Presentation Exchange v2 presentation submission.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/loader"
)

const presentationSubmissionSchemaURL = "https://identity.foundation/presentation-exchange/schemas/presentation-submission.json"

//go:embed presentation_submission.json
var presentationSubmissionSchemaData []byte

// PresentationSubmission is the JSON schema for a presentation submission, enveloped in a 'presentation_submission' property.
var PresentationSubmission *jsonschema.Schema

func init() {
	// By default, it loads from filesystem, but that sounds unsafe.
	// Since register our schemas, we don't need to allow loading resources.
	loader.Load = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("refusing to load unknown schema: %s", url)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(presentationSubmissionSchemaURL, bytes.NewReader(presentationSubmissionSchemaData)); err != nil {
		panic(fmt.Errorf("error compiling schema %s: %w", presentationSubmissionSchemaURL, err))
	}
	PresentationSubmission = compiler.MustCompile(presentationSubmissionSchemaURL)
}

// Validate validates the given data against the given schema.
func Validate(data []byte, schema *jsonschema.Schema) error {
	return schema.Validate(bytes.NewReader(data))
}
