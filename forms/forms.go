// Package forms derives responses for form submissions from the validity of the submitted form.
package forms

import (
	"context"
	"net/http"
	"sync"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
	"github.com/sargassum-world/turboresponse/turbostreams"
)

// DataKeyForm is the template data key for the submitted form.
const DataKeyForm = "form"

// Form is a submitted form which has been validated.
type Form interface {
	IsValid() bool
	// Errors returns the validation errors of each field, keyed by field name.
	Errors() map[string][]string
}

// Status returns the status code for a response to the form's submission: 200 (OK) if the form is
// valid, or 422 (Unprocessable Entity) if it isn't. Turbo only renders responses to form
// submissions with a 4xx or 5xx status code when the form is invalid.
func Status(f Form) int {
	if f.IsValid() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

// NewResponse creates an HTML response rendered from the first existing template among names, with
// the form added to data.
func NewResponse(
	ctx context.Context, r templates.Renderer, f Form, data map[string]any, names ...string,
) (*responses.Envelope, error) {
	merged := templates.Merge(data, map[string]any{DataKeyForm: f})
	body, err := templates.RenderString(ctx, r, names, merged)
	if err != nil {
		return nil, err
	}
	e := responses.New(responses.HTMLContentType, body, Status(f))
	e.Data = merged
	return e, nil
}

// NewStreamResponse creates a stream response with the message's content rendered from the first
// existing template among names, with the form added to data.
func NewStreamResponse(
	ctx context.Context, r templates.Renderer, f Form, m turbostreams.Message,
	data map[string]any, names ...string,
) (*responses.Envelope, error) {
	return turbostreams.NewTemplateResponse(
		ctx, r, m, names, templates.Merge(data, map[string]any{DataKeyForm: f}), Status(f),
	)
}

// Checked is a [Form] whose validation runs at most once, on first use.
type Checked struct {
	validate func() map[string][]string
	once     sync.Once
	errs     map[string][]string
}

// Check creates a [Checked] form validated by the function, which returns the validation errors
// of each invalid field.
func Check(validate func() map[string][]string) *Checked {
	return &Checked{validate: validate}
}

func (c *Checked) IsValid() bool {
	return len(c.Errors()) == 0
}

func (c *Checked) Errors() map[string][]string {
	c.once.Do(func() {
		c.errs = c.validate()
	})
	return c.errs
}
