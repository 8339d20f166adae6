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
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// APIKeyHeader is the HTTP header the cloud agent reads the API key from.
const APIKeyHeader = "apikey"

// ErrStrictMode is returned when a plain HTTP request is attempted while strict mode is enabled.
var ErrStrictMode = errors.New("strictmode is enabled, but request is not over HTTPS")

// maxLoggedBodyLength is the number of characters of an unexpected response body that is logged.
const maxLoggedBodyLength = 100

// HttpError describes an unexpected response of the agent.
type HttpError struct {
	error
	StatusCode   int
	ResponseBody []byte
}

// TestResponseCode checks whether the status code of a response matches the expected code, where 0 matches any code.
// If it doesn't match it returns an HttpError, containing the received and expected status code, and the response body.
// The (clipped) response body is logged using the given logger, unless nil is passed.
func TestResponseCode(expectedStatusCode int, statusCode int, body []byte, log *logrus.Entry) error {
	if expectedStatusCode == 0 || statusCode == expectedStatusCode {
		return nil
	}
	if log != nil {
		logged := string(body)
		if len(logged) > maxLoggedBodyLength {
			logged = logged[:maxLoggedBodyLength] + "...(clipped)"
		}
		log.WithField(LogFieldStatusCode, statusCode).
			Infof("Unexpected HTTP response (len=%d): %s", len(body), logged)
	}
	return HttpError{
		error:        fmt.Errorf("agent returned HTTP %d (expected: %d)", statusCode, expectedStatusCode),
		StatusCode:   statusCode,
		ResponseBody: body,
	}
}

// HTTPRequestDoer defines the Do method of the http.Client interface.
type HTTPRequestDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// httpRequestDoerAdapter wraps a HTTPRequestFn in a struct, so it can be used where HTTPRequestDoer is required.
type httpRequestDoerAdapter struct {
	fn func(req *http.Request) (*http.Response, error)
}

// Do calls the wrapped HTTPRequestFn.
func (w httpRequestDoerAdapter) Do(req *http.Request) (*http.Response, error) {
	return w.fn(req)
}

// CreateHTTPClient creates a new HTTP client for talking to the agent with the given client configuration.
// It enforces strict mode, trusts the CA certificates of the configured trust store (if any),
// and sets the User-Agent and (if configured) the API key header on every request.
func CreateHTTPClient(cfg ClientConfig) (HTTPRequestDoer, error) {
	var tlsConfig *tls.Config
	if cfg.TrustStoreFile != "" {
		trustStore, err := LoadTrustStore(cfg.TrustStoreFile)
		if err != nil {
			return nil, err
		}
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    trustStore.CertPool,
		}
	}
	strictClient := NewStrictHTTPClient(cfg.Strictmode, cfg.Timeout, tlsConfig)
	return httpRequestDoerAdapter{fn: func(req *http.Request) (*http.Response, error) {
		req.Header.Set("User-Agent", UserAgent())
		if len(cfg.APIKey) > 0 {
			req.Header.Set(APIKeyHeader, cfg.APIKey)
		}
		return strictClient.Do(req)
	}}, nil
}

// NewStrictHTTPClient creates a HTTPRequestDoer that only allows HTTPS calls when strictmode is enabled.
// A timeout of 0 means no timeout.
func NewStrictHTTPClient(strictmode bool, timeout time.Duration, tlsConfig *tls.Config) *StrictHTTPClient {
	if tlsConfig == nil {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	transport := http.DefaultTransport
	// Might not be http.Transport in testing
	if httpTransport, ok := transport.(*http.Transport); ok {
		httpTransport = httpTransport.Clone()
		httpTransport.TLSClientConfig = tlsConfig
		transport = httpTransport
	}

	return &StrictHTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		strictMode: strictmode,
	}
}

// StrictHTTPClient is an http.Client that refuses plain HTTP when strict mode is enabled.
type StrictHTTPClient struct {
	client     *http.Client
	strictMode bool
}

func (s *StrictHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if s.strictMode && req.URL.Scheme != "https" {
		return nil, ErrStrictMode
	}
	return s.client.Do(req)
}
