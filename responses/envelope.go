// Package responses provides transport-level response envelopes for Turbo Stream and Turbo Frame
// fragments, with either a fully-materialized body or a lazily-streamed body pulled from a
// [Producer] one fragment at a time.
package responses

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// HTMLContentType is the content type of Turbo Frame responses and of full HTML responses.
const HTMLContentType = "text/html; charset=utf-8"

// ErrConsumed is returned when writing an envelope whose streamed body was already written.
var ErrConsumed = errors.New("streamed response body was already consumed")

// Envelope is an HTTP response carrying fragments.
type Envelope struct {
	StatusCode  int
	ContentType string
	// Body is the materialized response body. It's empty for streamed responses.
	Body string
	// Data is the template data the body was rendered with, if it was rendered from a template.
	Data map[string]any

	producer Producer
	consumed bool
}

// New creates an [Envelope] with a materialized body. A status of 0 means 200.
func New(contentType, body string, status int) *Envelope {
	if status == 0 {
		status = http.StatusOK
	}
	return &Envelope{
		StatusCode:  status,
		ContentType: contentType,
		Body:        body,
	}
}

// NewStreaming creates an [Envelope] with status 200 whose body is pulled from the producer while
// the response is being written. The producer is consumed at most once.
func NewStreaming(contentType string, p Producer) *Envelope {
	return &Envelope{
		StatusCode:  http.StatusOK,
		ContentType: contentType,
		producer:    p,
	}
}

// Streaming reports whether the body is pulled from a producer.
func (e *Envelope) Streaming() bool {
	return e.producer != nil || e.consumed
}

// Write sends the envelope's headers, status, and body. For a streamed body, each fragment is
// written (and flushed, if w is an [http.Flusher]) as soon as it's produced, in production order.
// Streaming stops when the producer is exhausted, when ctx is done, when a write fails, or when
// the producer fails; the producer is closed in every case.
//
// Because the status and headers are sent before the first fragment is produced, a producer
// failure can't be turned into an error response: the client receives a partial body, and Write
// returns a [*ProductionError] so that the caller's transport-level error handling can deal with
// it (e.g. by aborting the connection).
func (e *Envelope) Write(ctx context.Context, w http.ResponseWriter) error {
	if e.consumed {
		return ErrConsumed
	}
	w.Header().Set("Content-Type", e.ContentType)
	w.WriteHeader(e.StatusCode)
	if e.producer == nil {
		_, err := io.WriteString(w, e.Body)
		return errors.Wrap(err, "couldn't write response body")
	}

	p := e.producer
	e.producer = nil
	e.consumed = true
	return stream(ctx, w, p)
}

func stream(ctx context.Context, w io.Writer, p Producer) (err error) {
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "couldn't close fragment producer")
		}
	}()

	flusher, _ := w.(http.Flusher)
	written := 0
	for {
		if err = ctx.Err(); err != nil {
			return err
		}
		fragment, perr := p.Next(ctx)
		if errors.Is(perr, io.EOF) {
			return nil
		}
		if perr != nil {
			if err = ctx.Err(); err != nil {
				return err
			}
			return &ProductionError{Written: written, Err: perr}
		}

		if _, err = io.WriteString(w, fragment); err != nil {
			return errors.Wrapf(err, "couldn't write fragment %d of streamed response", written)
		}
		written++
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// ProductionError reports a [Producer] failure in the middle of a streamed response, after
// Written fragments had already been sent to the client.
type ProductionError struct {
	Written int
	Err     error
}

func (e *ProductionError) Error() string {
	return fmt.Sprintf(
		"fragment producer failed after %d fragments were sent: %s", e.Written, e.Err,
	)
}

func (e *ProductionError) Unwrap() error {
	return e.Err
}
