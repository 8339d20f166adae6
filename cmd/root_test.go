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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/fixture"
	"github.com/nuts-foundation/vpsubmit/pe"
	"github.com/nuts-foundation/vpsubmit/stubagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func execute(ctx context.Context, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	command := CreateCommand()
	command.SetOut(buf)
	command.SetErr(io.Discard)
	command.SetArgs(args)
	err := command.ExecuteContext(ctx)
	return buf.String(), err
}

type recordingHandler struct {
	form   url.Values
	path   string
	apiKey string
}

func (h *recordingHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	_ = req.ParseForm()
	h.form = req.PostForm
	h.path = req.URL.Path
	h.apiKey = req.Header.Get(core.APIKeyHeader)
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("ok"))
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("root command submits", func(t *testing.T) {
		handler := &recordingHandler{}
		server := httptest.NewServer(handler)
		defer server.Close()

		output, err := execute(ctx, "--address", server.URL)

		require.NoError(t, err)
		assert.Equal(t, "200\nok\n", output)
		assert.Equal(t, "/oid4vp/submissions", handler.path)
		assert.Equal(t, fixture.JWTVC, handler.form.Get("vp_token"))
		var submission pe.PresentationSubmission
		require.NoError(t, json.Unmarshal([]byte(handler.form.Get("presentation_submission")), &submission))
		assert.Equal(t, fixture.SubmissionID, submission.Id)
		assert.Equal(t, fixture.DefinitionID, submission.DefinitionId)
	})
	t.Run("submit command against stub agent", func(t *testing.T) {
		agentStub, err := stubagent.New(stubagent.DefaultConfig())
		require.NoError(t, err)
		stub := httptest.NewServer(agentStub.Handler())
		defer stub.Close()

		output, err := execute(ctx, "submit", "--address", stub.URL)

		require.NoError(t, err)
		assert.Equal(t, "200\nok\n", output)
	})
	t.Run("submission ID from environment", func(t *testing.T) {
		handler := &recordingHandler{}
		server := httptest.NewServer(handler)
		defer server.Close()
		t.Setenv("VPSUBMIT_SUBMISSION_ID", "from-env")

		_, err := execute(ctx, "submit", "--address", server.URL)

		require.NoError(t, err)
		var submission pe.PresentationSubmission
		require.NoError(t, json.Unmarshal([]byte(handler.form.Get("presentation_submission")), &submission))
		assert.Equal(t, "from-env", submission.Id)
	})
	t.Run("non-2xx response is printed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := agent.NewMockClient(ctrl)
		client.EXPECT().SubmitPresentation(gomock.Any(), fixture.JWTVC, gomock.Any()).
			Return(&agent.SubmissionResponse{StatusCode: http.StatusBadRequest, Body: []byte(`{"detail":"invalid"}`)}, nil)
		overrideClient(t, client)

		output, err := execute(ctx, "submit")

		require.NoError(t, err)
		assert.Equal(t, "400\n{\"detail\":\"invalid\"}\n", output)
	})
	t.Run("error - transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := agent.NewMockClient(ctrl)
		client.EXPECT().SubmitPresentation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		overrideClient(t, client)

		output, err := execute(ctx, "submit")

		assert.EqualError(t, err, "connection refused")
		assert.Empty(t, output)
	})
	t.Run("values with commas from environment", func(t *testing.T) {
		handler := &recordingHandler{}
		server := httptest.NewServer(handler)
		defer server.Close()
		vpToken := `{"a":1,"b":2}`
		t.Setenv("VPSUBMIT_APIKEY", "abc,def")
		t.Setenv("VPSUBMIT_HOLDER_VPTOKEN", vpToken)

		output, err := execute(ctx, "--address", server.URL)

		require.NoError(t, err)
		assert.Equal(t, "200\nok\n", output)
		assert.Equal(t, "abc,def", handler.apiKey)
		assert.Equal(t, vpToken, handler.form.Get("vp_token"))
	})
	t.Run("invalid holder DID is submitted anyway", func(t *testing.T) {
		handler := &recordingHandler{}
		server := httptest.NewServer(handler)
		defer server.Close()

		output, err := execute(ctx, "submit", "--address", server.URL, "--holder.did", "invalid")

		require.NoError(t, err)
		assert.Equal(t, "200\nok\n", output)
		assert.Equal(t, fixture.JWTVC, handler.form.Get("vp_token"))
	})
	t.Run("expected status code", func(t *testing.T) {
		handler := &recordingHandler{}
		server := httptest.NewServer(handler)
		defer server.Close()

		output, err := execute(ctx, "submit", "--address", server.URL, "--expectstatus", "200")

		require.NoError(t, err)
		assert.Equal(t, "200\nok\n", output)
	})
	t.Run("error - unexpected status code is printed, then fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := agent.NewMockClient(ctrl)
		client.EXPECT().SubmitPresentation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&agent.SubmissionResponse{StatusCode: http.StatusBadRequest, Body: []byte(`{"detail":"invalid"}`)}, nil)
		overrideClient(t, client)

		output, err := execute(ctx, "submit", "--expectstatus", "200")

		assert.EqualError(t, err, "agent returned HTTP 400 (expected: 200)")
		var httpErr core.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, "400\n{\"detail\":\"invalid\"}\n", output)
	})
	t.Run("error - unknown command", func(t *testing.T) {
		_, err := execute(ctx, "foo")

		assert.ErrorContains(t, err, "unknown command")
	})
}

func TestInspect(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		output, err := execute(ctx, "inspect", "--format", "json")

		require.NoError(t, err)
		var result inspection
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Equal(t, core.DefaultAddress+"/oid4vp/submissions", result.Endpoint)
		assert.Equal(t, "prism", result.Holder.Method)
		assert.True(t, result.Holder.LongForm)
		assert.Equal(t, "key-0", result.Holder.AssertionKey)
		require.Len(t, result.Holder.PublicKeys, 2)
		assert.Equal(t, "master", result.Holder.PublicKeys[0].Usage)
		require.NotNil(t, result.Credential)
		assert.Equal(t, fixture.IssuerDID, result.Credential.Issuer)
		assert.True(t, result.Credential.SubjectIsHolder)
		assert.Empty(t, result.Errors)
		assert.Equal(t, fixture.SubmissionID, result.Submission.Id)
	})
	t.Run("yaml", func(t *testing.T) {
		output, err := execute(ctx, "inspect")

		require.NoError(t, err)
		assert.Contains(t, output, "assertionKey: key-0")
		assert.Contains(t, output, "definition_id:")
		assert.Contains(t, output, fixture.DefinitionID)
		assert.Contains(t, output, "descriptor_map:")
		assert.NotContains(t, output, "definitionid")
	})
	t.Run("key mismatch is reported", func(t *testing.T) {
		output, err := execute(ctx, "inspect", "--format", "json", "--holder.keyhex", "0000000000000000000000000000000000000000000000000000000000000001")

		require.NoError(t, err)
		var result inspection
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Empty(t, result.Holder.AssertionKey)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "holder key is not an assertion key of the holder DID")
	})
	t.Run("error - invalid holder DID", func(t *testing.T) {
		output, err := execute(ctx, "inspect", "--holder.did", "invalid")

		assert.ErrorContains(t, err, "invalid holder DID")
		assert.Empty(t, output)
	})
	t.Run("error - invalid format", func(t *testing.T) {
		_, err := execute(ctx, "inspect", "--format", "xml")

		assert.EqualError(t, err, "invalid format: 'xml'")
	})
}

func TestPrintConfig(t *testing.T) {
	output, err := execute(context.Background(), "config", "--apikey", "secret")

	require.NoError(t, err)
	assert.Contains(t, output, "Current config")
	assert.Contains(t, output, "address -> "+core.DefaultAddress)
	assert.Contains(t, output, "apikey -> <redacted>")
	assert.NotContains(t, output, "secret")
	assert.NotContains(t, output, fixture.HolderAssertionPrivateKeyHex)
}

func TestVersion(t *testing.T) {
	output, err := execute(context.Background(), "version")

	require.NoError(t, err)
	assert.Contains(t, output, "Git version: ")
	assert.Contains(t, output, "OS/Arch: ")
}

func TestStubAgent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := execute(ctx, "stub-agent", "--stubagent.address", "localhost:0")

	assert.NoError(t, err)
}

func TestLoggerFormat(t *testing.T) {
	_, err := execute(context.Background(), "version", "--loggerformat", "xml")

	assert.EqualError(t, err, "invalid formatter: 'xml'")
}

func overrideClient(t *testing.T, client agent.Client) {
	original := clientCreator
	clientCreator = func(_ core.ClientConfig) (agent.Client, error) {
		return client, nil
	}
	t.Cleanup(func() {
		clientCreator = original
	})
}
