package turbostreams

import (
	"context"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
)

// Builder builds a stream message and its response step by step. Each method returns a new
// Builder, so a partially-configured Builder can be shared and reused.
type Builder struct {
	message  Message
	status   int
	renderer templates.Renderer
}

// Stream starts building a message targeting the element with the DOM ID.
func Stream(target string) Builder {
	return Builder{message: Message{Target: target}}
}

// StreamAll starts building a message targeting all elements matching the CSS selector.
func StreamAll(selector string) Builder {
	return Builder{message: Message{Targets: selector}}
}

// Action sets the action.
func (b Builder) Action(a Action) Builder {
	b.message.Action = a
	return b
}

// Append sets the action to ActionAppend; the other accessors likewise set their own actions.
func (b Builder) Append() Builder  { return b.Action(ActionAppend) }
func (b Builder) Prepend() Builder { return b.Action(ActionPrepend) }
func (b Builder) Replace() Builder { return b.Action(ActionReplace) }
func (b Builder) Update() Builder  { return b.Action(ActionUpdate) }
func (b Builder) Remove() Builder  { return b.Action(ActionRemove) }
func (b Builder) Before() Builder  { return b.Action(ActionBefore) }
func (b Builder) After() Builder   { return b.Action(ActionAfter) }

// Status sets the status code of built responses.
func (b Builder) Status(code int) Builder {
	b.status = code
	return b
}

// Using sets the renderer for templates.
func (b Builder) Using(r templates.Renderer) Builder {
	b.renderer = r
	return b
}

// Message returns the message built so far, without content.
func (b Builder) Message() Message {
	return b.message
}

// Render renders the content into the message.
func (b Builder) Render(content string) (string, error) {
	m := b.message
	m.Content = content
	return m.Render()
}

// Response creates a response with the content rendered into the message.
func (b Builder) Response(content string) (*responses.Envelope, error) {
	m := b.message
	m.Content = content
	return NewMessagesResponse(b.status, m)
}

// Template switches to building the message's content from the first existing template among
// names.
func (b Builder) Template(data map[string]any, names ...string) TemplateBuilder {
	return TemplateBuilder{builder: b, names: names, data: data}
}

// TemplateBuilder builds a stream message whose content is rendered from a template.
type TemplateBuilder struct {
	builder Builder
	names   []string
	data    map[string]any
}

// Render renders the template into the message.
func (b TemplateBuilder) Render(ctx context.Context) (string, error) {
	rendered, _, err := RenderTemplate(
		ctx, b.builder.renderer, b.builder.message, b.names, b.data,
	)
	return rendered, err
}

// Response creates a response with the template rendered into the message.
func (b TemplateBuilder) Response(ctx context.Context) (*responses.Envelope, error) {
	return NewTemplateResponse(
		ctx, b.builder.renderer, b.builder.message, b.names, b.data, b.builder.status,
	)
}
