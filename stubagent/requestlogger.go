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
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/sirupsen/logrus"
)

// requestLoggerMiddleware returns middleware that logs the outcome of every request to the stub agent.
// The status is taken from the returned error if there is one, since the error handler writes the response afterwards.
func requestLoggerMiddleware(logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			status := values.Status
			if values.Error != nil {
				status = core.GetHTTPStatusCode(values.Error)
			}
			entry := logger.WithFields(logrus.Fields{
				"remote_ip": values.RemoteIP,
				"method":    values.Method,
				"uri":       values.URI,
				"status":    status,
				"latency":   values.Latency.String(),
			})
			if operationID := c.Get(core.OperationIDContextKey); operationID != nil {
				entry = entry.WithField("operation", operationID)
			}
			if values.Error != nil {
				entry = entry.WithError(values.Error)
			}
			entry.Info("HTTP request")
			return nil
		},
	})
}

// submissionLoggerMiddleware returns middleware that logs the form fields of submissions and the replies of the agent.
// The vp_token holds personal data, so only its length is logged.
func submissionLoggerMiddleware(logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost
		},
		Handler: func(c echo.Context, request []byte, response []byte) {
			entry := logger.WithField("status", c.Response().Status)
			form, err := url.ParseQuery(string(request))
			if err != nil {
				entry.WithError(err).Info("Submission is not form encoded")
				return
			}
			entry.
				WithField(agent.VPTokenField, redact(form.Get(agent.VPTokenField))).
				WithField(agent.PresentationSubmissionField, form.Get(agent.PresentationSubmissionField)).
				Infof("Submission replied: %s", response)
		},
	})
}

func redact(value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<redacted, %d bytes>", len(value))
}
