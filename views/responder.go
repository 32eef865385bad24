package views

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/forms"
	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
	"github.com/sargassum-world/turboresponse/turboframes"
	"github.com/sargassum-world/turboresponse/turbostreams"
)

// ErrMissingCapability is returned when a handler lacks a capability needed for a response.
var ErrMissingCapability = errors.New("handler lacks a required capability")

// Responder renders responses for handlers.
type Responder struct {
	Renderer templates.Renderer
	Resolver templates.Resolver
}

// NewResponder creates a [Responder] configured by c.
func NewResponder(r templates.Renderer, c templates.Config) *Responder {
	return &Responder{
		Renderer: r,
		Resolver: c.Resolver(),
	}
}

func missing(h any, capability string) error {
	return errors.Wrapf(ErrMissingCapability, "%T isn't a %s", h, capability)
}

// StreamTemplateNames returns the names of the templates to render into the handler's stream
// messages: the handler's configured stream template if it has one, or else the partials of its
// template names.
func (r *Responder) StreamTemplateNames(h any) []string {
	var (
		configured    string
		configuredSet bool
		names         []string
	)
	if p, ok := h.(StreamTemplateNameProvider); ok {
		configured, configuredSet = p.StreamTemplateName()
	}
	if p, ok := h.(TemplateNameProvider); ok {
		names = p.TemplateNames()
	}
	return r.Resolver.StreamNames(configured, configuredSet, names)
}

func templateData(h any, data map[string]any) map[string]any {
	if p, ok := h.(TemplateDataProvider); ok {
		return p.TemplateData(data)
	}
	return data
}

func content(h any) (string, error) {
	p, ok := h.(ResponseContentProvider)
	if !ok {
		return "", nil
	}
	c, err := p.ResponseContent()
	return c, errors.Wrapf(err, "couldn't get response content from %T", h)
}

func usesTemplates(h any) bool {
	switch h.(type) {
	case TemplateNameProvider, StreamTemplateNameProvider:
		return true
	default:
		return false
	}
}

func (r *Responder) message(h any) (turbostreams.Message, error) {
	p, ok := h.(FragmentActionProvider)
	if !ok {
		return turbostreams.Message{}, missing(h, "FragmentActionProvider")
	}
	return turbostreams.Message{Action: p.StreamAction(), Target: p.StreamTarget()}, nil
}

// RenderStream creates the handler's stream response. The message's content is rendered from the
// handler's stream templates if the handler uses templates, or else taken from the handler's
// response content; a handler providing neither gets an empty message.
func (r *Responder) RenderStream(
	ctx context.Context, h any, data map[string]any,
) (*responses.Envelope, error) {
	return r.renderStream(ctx, h, data, 0)
}

func (r *Responder) renderStream(
	ctx context.Context, h any, data map[string]any, status int,
) (*responses.Envelope, error) {
	m, err := r.message(h)
	if err != nil {
		return nil, err
	}
	if usesTemplates(h) {
		return turbostreams.NewTemplateResponse(
			ctx, r.Renderer, m, r.StreamTemplateNames(h), templateData(h, data), status,
		)
	}
	if m.Content, err = content(h); err != nil {
		return nil, err
	}
	return turbostreams.NewMessagesResponse(status, m)
}

// RenderFrame creates the handler's frame response. The frame's content is rendered from the
// handler's full templates if the handler provides template names, or else taken from the
// handler's response content.
func (r *Responder) RenderFrame(
	ctx context.Context, h any, data map[string]any,
) (*responses.Envelope, error) {
	p, ok := h.(FrameDOMIDProvider)
	if !ok {
		return nil, missing(h, "FrameDOMIDProvider")
	}
	if n, ok := h.(TemplateNameProvider); ok {
		return turboframes.NewTemplateResponse(
			ctx, r.Renderer, p.FrameDOMID(), n.TemplateNames(), templateData(h, data), 0,
		)
	}
	c, err := content(h)
	if err != nil {
		return nil, err
	}
	return turboframes.NewResponse(c, p.FrameDOMID(), 0)
}

// FormInvalid creates the handler's stream response for a submission of the form, with the form
// added to the template data. Its status is derived from the form's validity.
func (r *Responder) FormInvalid(
	ctx context.Context, h any, form forms.Form, data map[string]any,
) (*responses.Envelope, error) {
	if !usesTemplates(h) {
		return nil, missing(h, "TemplateNameProvider or StreamTemplateNameProvider")
	}
	data = templates.Merge(data, map[string]any{forms.DataKeyForm: form})
	return r.renderStream(ctx, h, data, forms.Status(form))
}
