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

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/fixture"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerMiddleware(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		e.Use(requestLoggerMiddleware(logrus.NewEntry(logger)))
		e.GET("/", func(c echo.Context) error {
			c.Set(core.OperationIDContextKey, "GetSubmission")
			return c.NoContent(http.StatusNoContent)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, "HTTP request", entry.Message)
		assert.Equal(t, http.StatusNoContent, entry.Data["status"])
		assert.Equal(t, "GetSubmission", entry.Data["operation"])
		assert.Equal(t, http.MethodGet, entry.Data["method"])
	})
	t.Run("status is taken from error", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		e.HTTPErrorHandler = core.CreateHTTPErrorHandler()
		e.Use(requestLoggerMiddleware(logrus.NewEntry(logger)))
		e.GET("/", func(c echo.Context) error {
			return core.InvalidInputError("missing form field: %s", agent.VPTokenField)
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, hook.Entries, 1)
		assert.Equal(t, http.StatusBadRequest, hook.LastEntry().Data["status"])
		assert.NotNil(t, hook.LastEntry().Data[logrus.ErrorKey])
	})
	t.Run("unknown errors map to internal server error", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		e.Use(requestLoggerMiddleware(logrus.NewEntry(logger)))
		e.GET("/", func(c echo.Context) error {
			return errors.New("failure")
		})

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, hook.Entries, 1)
		assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])
	})
}

func TestSubmissionLoggerMiddleware(t *testing.T) {
	newServer := func(logger *logrus.Logger) *echo.Echo {
		e := echo.New()
		e.Use(submissionLoggerMiddleware(logrus.NewEntry(logger)))
		e.POST("/", func(c echo.Context) error {
			return c.String(http.StatusOK, AcceptedResponse)
		})
		e.GET("/", func(c echo.Context) error {
			return c.String(http.StatusOK, "{}")
		})
		return e
	}
	t.Run("vp_token is redacted", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		form := url.Values{
			agent.VPTokenField:                []string{fixture.JWTVC},
			agent.PresentationSubmissionField: []string{`{"id":"1"}`},
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		newServer(logger).ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, "Submission replied: ok", entry.Message)
		assert.Equal(t, `{"id":"1"}`, entry.Data[agent.PresentationSubmissionField])
		assert.Equal(t, redact(fixture.JWTVC), entry.Data[agent.VPTokenField])
		assert.NotContains(t, entry.Data[agent.VPTokenField], fixture.JWTVC)
		assert.Equal(t, http.StatusOK, entry.Data["status"])
	})
	t.Run("GET requests are not logged", func(t *testing.T) {
		logger, hook := test.NewNullLogger()

		newServer(logger).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, hook.Entries)
	})
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", redact(""))
	assert.Equal(t, "<redacted, 3 bytes>", redact("abc"))
}
