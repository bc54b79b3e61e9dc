package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

type homeworkFetcher interface {
	Fetch(ctx context.Context, from Cursor) (json.RawMessage, error)
}

type textSender interface {
	Send(ctx context.Context, text string) error
}

// PollLoop checks the review API every period and relays status changes.
// It is not safe for concurrent use, one cycle runs at a time.
type PollLoop struct {
	api      homeworkFetcher
	notifier textSender
	period   time.Duration
	now      func() time.Time

	cursor      Cursor
	lastMessage string
	lastError   string
}

func NewPollLoop(api homeworkFetcher, notifier textSender, cfg *Config) *PollLoop {
	return &PollLoop{
		api:      api,
		notifier: notifier,
		period:   cfg.RetryPeriod,
		now:      time.Now,
		cursor:   CursorFromTime(time.Now()),
	}
}

func (p *PollLoop) Cursor() Cursor {
	return p.cursor
}

// Run blocks until ctx is cancelled. A failed cycle never stops it.
func (p *PollLoop) Run(ctx context.Context) {
	slog.Info("starting homework poll loop", slog.Duration("period", p.period), slog.String("cursor", p.cursor.String()))
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("poll loop stopped")
			return
		case <-timer.C:
		}
		p.runCycle(ctx)
		timer.Reset(p.period)
	}
}

func (p *PollLoop) runCycle(ctx context.Context) {
	err := p.checkHomework(ctx)
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		slog.Debug("cycle interrupted by shutdown", slog.String("err", err.Error()))
		return
	}
	p.reportFailure(ctx, err)
}

// checkHomework runs fetch, check, parse and notify once. The returned error
// is always one the recipient should hear about; send failures are handled here.
func (p *PollLoop) checkHomework(ctx context.Context) error {
	startedAt := p.now()

	raw, err := p.api.Fetch(ctx, p.cursor)
	if err != nil {
		logFetchError(err)
		return err
	}
	slog.Debug("review API response", slog.String("body", string(raw)))

	checked, err := checkResponse(raw)
	if err != nil {
		return err
	}

	var newest json.RawMessage
	if len(checked.Homeworks) > 0 {
		newest = checked.Homeworks[0]
	}
	message, err := parseStatus(newest)
	if err != nil {
		return err
	}

	switch {
	case message == "":
		slog.Debug("homework status not changed")
	case message == p.lastMessage:
		slog.Debug("status message already sent, skipping", slog.String("message", message))
	default:
		if err := p.notifier.Send(ctx, message); err != nil {
			// keep the cursor so the change is offered again next cycle
			slog.Error("can't deliver status change", slog.String("err", err.Error()))
			return nil
		}
		p.lastMessage = message
		slog.Info("status change delivered", slog.String("message", message))
	}

	if checked.CurrentDate != nil {
		p.cursor = *checked.CurrentDate
	} else {
		p.cursor = CursorFromTime(startedAt)
	}
	return nil
}

func logFetchError(err error) {
	var transportErr *TransportError
	var statusErr *UnexpectedStatusError
	switch {
	case errors.As(err, &transportErr):
		slog.Error("review API unreachable",
			slog.String("endpoint", transportErr.Endpoint),
			slog.String("params", transportErr.Params.Encode()),
			slog.String("err", transportErr.Err.Error()))
	case errors.As(err, &statusErr):
		slog.Error("review API returned unexpected status",
			slog.String("endpoint", statusErr.Endpoint),
			slog.String("params", statusErr.Params.Encode()),
			slog.Int("status", statusErr.StatusCode))
	}
}

func failureMessage(err error) string {
	return "Bot failure: " + err.Error()
}

// reportFailure tells the recipient about a new distinct failure once.
func (p *PollLoop) reportFailure(ctx context.Context, err error) {
	message := failureMessage(err)
	slog.Error(message)
	if message == p.lastError {
		slog.Debug("failure already reported, skipping")
		return
	}
	if sendErr := p.notifier.Send(ctx, message); sendErr != nil {
		slog.Error("can't report failure to chat", slog.String("err", sendErr.Error()))
		return
	}
	p.lastError = message
}
