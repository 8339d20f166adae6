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

// Package stubagent provides a local stand-in for the OID4VP submission endpoint of a cloud agent.
// It checks the presentation submission against the vp_token, but doesn't verify any signatures.
package stubagent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/nuts-foundation/vpsubmit/agent"
	"github.com/nuts-foundation/vpsubmit/core"
	"github.com/nuts-foundation/vpsubmit/pe"
	"github.com/nuts-foundation/vpsubmit/stubagent/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"
)

// ModuleName is the name of the stub agent module, used in logging and error responses.
const ModuleName = "StubAgent"

const submitOperationID = "SubmitPresentation"

// AcceptedResponse is the body of the response to an accepted submission.
const AcceptedResponse = "ok"

// Agent is the stub agent.
type Agent struct {
	config   Config
	echo     *echo.Echo
	metrics  *metrics
	accepted *atomic.Int64
	rejected *atomic.Int64
	last     atomic.Pointer[Submission]
	store    submissionStore
	done     chan struct{}
	mux      sync.Mutex
}

// Submission is a submission accepted by the stub agent.
type Submission struct {
	VPToken     string
	Submission  pe.PresentationSubmission
	Credentials map[string]vc.VerifiableCredential
}

// New creates a new stub agent with its routes registered and its store opened. It doesn't listen yet, see Start.
func New(config Config) (*Agent, error) {
	store, err := openStore(config.StorageFile)
	if err != nil {
		return nil, fmt.Errorf("unable to open submission store: %w", err)
	}
	result := &Agent{
		config:   config,
		metrics:  newMetrics(),
		accepted: atomic.NewInt64(0),
		rejected: atomic.NewInt64(0),
		store:    store,
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	e.Use(requestLoggerMiddleware(log.Logger()))
	if config.LogBodies {
		e.Use(submissionLoggerMiddleware(log.Logger()))
	}
	result.echo = e
	result.Routes(e)
	return result, nil
}

// Routes registers the routes of the stub agent.
func (a *Agent) Routes(router core.EchoRouter) {
	var middlewares []echo.MiddlewareFunc
	if a.config.RateLimit > 0 {
		middlewares = append(middlewares, newRateLimiter(a.config.RateLimit))
	}
	router.POST("/"+agent.SubmissionsPath, a.handleSubmission, middlewares...)
	router.GET("/"+agent.SubmissionsPath+"/:id", a.getSubmission)
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{})))
}

// Handler returns the stub agent as http.Handler.
func (a *Agent) Handler() http.Handler {
	return a.echo
}

// Start starts listening on the configured address. It returns when the agent accepts connections.
func (a *Agent) Start() error {
	a.mux.Lock()
	defer a.mux.Unlock()
	if a.done != nil {
		return errors.New("stub agent already started")
	}
	listener, err := net.Listen("tcp", a.config.Address)
	if err != nil {
		return err
	}
	a.echo.Listener = listener
	a.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		if err := a.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger().WithError(err).Error("Stub agent stopped unexpectedly")
		}
	}(a.done)
	log.Logger().Infof("Stub agent listening on %s", listener.Addr())
	return nil
}

// Address returns the address the agent listens on, or an empty string if it isn't started.
func (a *Agent) Address() string {
	a.mux.Lock()
	defer a.mux.Unlock()
	if a.echo.Listener == nil {
		return ""
	}
	return a.echo.Listener.Addr().String()
}

// Shutdown stops the agent, waiting for in-flight requests until the context expires, and closes the store.
func (a *Agent) Shutdown(ctx context.Context) error {
	a.mux.Lock()
	done := a.done
	a.mux.Unlock()
	if done != nil {
		if err := a.echo.Shutdown(ctx); err != nil {
			return err
		}
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return a.store.Close()
}

// Accepted returns the number of accepted submissions.
func (a *Agent) Accepted() int64 {
	return a.accepted.Load()
}

// Rejected returns the number of rejected submissions.
func (a *Agent) Rejected() int64 {
	return a.rejected.Load()
}

// LastSubmission returns the last accepted submission, or nil if none was accepted.
func (a *Agent) LastSubmission() *Submission {
	return a.last.Load()
}

func (a *Agent) handleSubmission(ctx echo.Context) error {
	ctx.Set(core.OperationIDContextKey, submitOperationID)
	ctx.Set(core.ModuleNameContextKey, ModuleName)
	submission, err := a.checkSubmission(ctx)
	if err != nil {
		a.rejected.Inc()
		a.metrics.submissions.WithLabelValues(outcomeRejected).Inc()
		return err
	}
	err = a.store.Put(Record{
		ReceivedAt: time.Now(),
		VPToken:    submission.VPToken,
		Submission: submission.Submission,
	})
	if err != nil {
		return fmt.Errorf("unable to store submission: %w", err)
	}
	a.accepted.Inc()
	a.metrics.submissions.WithLabelValues(outcomeAccepted).Inc()
	a.last.Store(submission)
	for descriptorID, credential := range submission.Credentials {
		logger := log.Logger().
			WithField(core.LogFieldSubmissionID, submission.Submission.Id).
			WithField(core.LogFieldInputDescriptorID, descriptorID)
		if credential.Issuer.String() != "" {
			logger = logger.WithField(core.LogFieldCredentialIssuer, credential.Issuer.String())
		}
		logger.Info("Accepted presentation submission")
	}
	return ctx.String(http.StatusOK, AcceptedResponse)
}

func (a *Agent) getSubmission(ctx echo.Context) error {
	ctx.Set(core.OperationIDContextKey, "GetSubmission")
	ctx.Set(core.ModuleNameContextKey, ModuleName)
	record, err := a.store.Get(ctx.Param("id"))
	if errors.Is(err, ErrSubmissionNotFound) {
		return core.NotFoundError("%w", err)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

func (a *Agent) checkSubmission(ctx echo.Context) (*Submission, error) {
	vpToken := ctx.FormValue(agent.VPTokenField)
	if vpToken == "" {
		return nil, core.InvalidInputError("missing form field: %s", agent.VPTokenField)
	}
	submissionJSON := ctx.FormValue(agent.PresentationSubmissionField)
	if submissionJSON == "" {
		return nil, core.InvalidInputError("missing form field: %s", agent.PresentationSubmissionField)
	}
	submission, err := pe.ParsePresentationSubmission([]byte(submissionJSON))
	if err != nil {
		return nil, core.InvalidInputError("%w", err)
	}
	envelope, err := pe.ParseEnvelope([]byte(vpToken))
	if err != nil {
		return nil, core.InvalidInputError("%w", err)
	}
	credentials, err := submission.Resolve(*envelope)
	if err != nil {
		return nil, core.InvalidInputError("%w", err)
	}
	return &Submission{
		VPToken:     vpToken,
		Submission:  *submission,
		Credentials: credentials,
	}, nil
}
