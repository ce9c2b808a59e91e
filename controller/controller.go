package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"facerecog/client"
	"facerecog/intake"
	"facerecog/logging"
	"facerecog/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenericFailureMessage is shown for every transport or malformed-response failure
const GenericFailureMessage = "Failed to connect to backend."

// Recognizer performs the single network call for a submission
type Recognizer interface {
	Predict(ctx context.Context, upload client.Upload) (*types.RecognitionResult, error)
}

// Policy decides what happens when responses to overlapping submissions arrive
type Policy string

const (
	// PolicyLatestRequest drops any response whose request has been superseded
	PolicyLatestRequest Policy = "latest-request"
	// PolicyLastResponse lets whichever response arrives last overwrite the state
	PolicyLastResponse Policy = "last-response"
)

// ParsePolicy validates a policy name
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyLatestRequest:
		return PolicyLatestRequest, nil
	case PolicyLastResponse:
		return PolicyLastResponse, nil
	default:
		return "", fmt.Errorf("unknown supersession policy %q (want %q or %q)", name, PolicyLatestRequest, PolicyLastResponse)
	}
}

// Request is one submission's network call, tagged with its sequence number
type Request struct {
	Seq      int64
	ID       string
	Filename string
	IssuedAt time.Time

	upload client.Upload
	ctx    context.Context
	// cancel is reserved for user-facing cancellation; today it only runs on Close.
	cancel context.CancelFunc
}

// Outcome is what the network call produced for a request
type Outcome struct {
	Result  *types.RecognitionResult
	Err     error
	Elapsed time.Duration
}

// Config wires a Controller
type Config struct {
	Recognizer Recognizer
	Policy     Policy
	Posters    PosterResolver
	Logger     *zap.Logger
}

// Controller owns the client state and is its only writer.
//
// Submit, Complete, Snapshot, View and Close must all be called from the same
// goroutine (the UI loop). Recognize may run anywhere: it never touches state.
type Controller struct {
	recognizer Recognizer
	policy     Policy
	posters    PosterResolver
	logger     *zap.Logger

	state   State
	seq     int64
	pending map[int64]*Request
}

// New creates a controller in the Idle phase
func New(cfg Config) *Controller {
	if cfg.Policy == "" {
		cfg.Policy = PolicyLatestRequest
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Controller{
		recognizer: cfg.Recognizer,
		policy:     cfg.Policy,
		posters:    cfg.Posters,
		logger:     cfg.Logger,
		state:      State{Phase: PhaseIdle},
		pending:    make(map[int64]*Request),
	}
}

// Submit makes img the current selection, clears the previous result and
// error, enters InFlight and returns the request to run. Any earlier request
// keeps running. The displaced image, if any, is returned so the caller can
// release it.
func (c *Controller) Submit(img *intake.SelectedImage) (*Request, *intake.SelectedImage) {
	discarded := c.state.Image
	if discarded == img {
		discarded = nil
	}

	c.state.Image = img
	c.state.Result = nil
	c.state.Err = nil
	c.state.Phase = PhaseInFlight

	c.seq++
	ctx, cancel := context.WithCancel(context.Background())
	req := &Request{
		Seq:      c.seq,
		ID:       uuid.NewString(),
		IssuedAt: time.Now(),
		ctx:      ctx,
		cancel:   cancel,
	}
	if img != nil {
		req.Filename = img.Name
		req.upload = client.Upload{Filename: img.Name, ContentType: img.ContentType, Data: img.Data()}
	}
	c.pending[req.Seq] = req

	logging.WithOperation(c.logger, "submit", req.ID).Info("image submitted",
		zap.Int64("seq", req.Seq),
		zap.String("file", req.Filename),
		zap.Int("bytes", len(req.upload.Data)),
		zap.Int("in_flight", len(c.pending)),
	)
	return req, discarded
}

// Recognize issues the request's single HTTP call and waits for it.
// It does not retry and does not read or write controller state.
func (c *Controller) Recognize(req *Request) Outcome {
	start := time.Now()
	if c.recognizer == nil {
		return Outcome{Err: errors.New("no recognizer configured")}
	}
	result, err := c.recognizer.Predict(req.ctx, req.upload)
	return Outcome{Result: result, Err: err, Elapsed: time.Since(start)}
}

// Complete applies a request's outcome and settles the phase.
// It returns false when the outcome is dropped: the request already settled,
// or a newer request superseded it under PolicyLatestRequest.
func (c *Controller) Complete(req *Request, out Outcome) bool {
	logger := logging.WithOperation(c.logger, "recognize", req.ID).With(
		zap.Int64("seq", req.Seq),
		zap.Time("issued_at", req.IssuedAt),
		zap.Duration("elapsed", out.Elapsed),
	)

	if _, ok := c.pending[req.Seq]; !ok {
		logger.Warn("duplicate completion ignored")
		return false
	}
	delete(c.pending, req.Seq)
	req.cancel()

	if c.policy == PolicyLatestRequest && req.Seq < c.seq {
		logger.Info("superseded response discarded", zap.Int64("latest_seq", c.seq))
		return false
	}

	// Responses replace each other wholesale; nothing carries over.
	c.state.Result = nil
	c.state.Err = nil

	switch {
	case out.Err != nil:
		kind := classify(out.Err)
		c.state.Err = &ErrorState{Message: GenericFailureMessage, Kind: kind}
		logger.Warn("recognition failed",
			zap.String("kind", string(kind)),
			zap.Error(logging.NewOperationError("recognize", req.Seq, req.ID, out.Err)),
		)
	case out.Result == nil:
		c.state.Err = &ErrorState{Message: GenericFailureMessage, Kind: ErrorMalformed}
		logger.Warn("recognition returned no result")
	default:
		c.state.Result = out.Result
		if msg := out.Result.ServerError(); msg != "" {
			c.state.Err = &ErrorState{Message: msg, Kind: ErrorRecognition}
		}
		logger.Info("recognition settled",
			zap.String("actor", out.Result.Actor),
			zap.Int("works", len(out.Result.Movies)),
			zap.String("server_error", out.Result.ServerError()),
		)
	}

	c.state.Phase = PhaseSettled
	return true
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	return c.state
}

// View projects the current state into what the UI should display
func (c *Controller) View() Presentation {
	return Present(c.state, c.posters)
}

// Pending returns the number of requests that have not completed yet
func (c *Controller) Pending() int {
	return len(c.pending)
}

// Close cancels every outstanding request. Used on shutdown only.
func (c *Controller) Close() {
	for seq, req := range c.pending {
		req.cancel()
		delete(c.pending, seq)
	}
	if c.state.Image != nil {
		c.state.Image.Release()
	}
}

func classify(err error) ErrorKind {
	var malformed *client.MalformedResponseError
	if errors.As(err, &malformed) {
		return ErrorMalformed
	}
	var fieldErr *types.FieldError
	if errors.As(err, &fieldErr) {
		return ErrorMalformed
	}
	return ErrorTransport
}
