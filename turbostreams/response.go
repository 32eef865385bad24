package turbostreams

import (
	"context"
	"iter"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
)

// Keys added to the data of templates rendered into stream messages.
const (
	DataKeyIsStream = "is_turbo_stream"
	DataKeyAction   = "turbo_stream_action"
	DataKeyTarget   = "turbo_stream_target"
	DataKeyTargets  = "turbo_stream_targets"
)

// NewResponse creates a response with the content rendered into a single stream message. A status
// of 0 means 200.
func NewResponse(
	content string, action Action, target string, status int,
) (*responses.Envelope, error) {
	body, err := Render(content, action, target)
	if err != nil {
		return nil, err
	}
	return responses.New(ResponseContentType, body, status), nil
}

// NewMessagesResponse creates a response with the messages rendered in order.
func NewMessagesResponse(status int, messages ...Message) (*responses.Envelope, error) {
	body, err := RenderAll(messages...)
	if err != nil {
		return nil, err
	}
	return responses.New(ResponseContentType, body, status), nil
}

// NewStreamingResponse creates a response whose stream messages are written as the producer
// produces them.
func NewStreamingResponse(p responses.Producer) *responses.Envelope {
	return responses.NewStreaming(ResponseContentType, p)
}

// FromMessages creates a producer which renders each message of the sequence as it's pulled. An
// invalid message stops the stream with its validation error.
func FromMessages(messages iter.Seq[Message]) responses.Producer {
	return responses.FromSeq2(func(yield func(string, error) bool) {
		for m := range messages {
			rendered, err := m.Render()
			if !yield(rendered, err) || err != nil {
				return
			}
		}
	})
}

// TemplateData returns a copy of data with the message's action and target added under the
// reserved keys. Only the key for the message's kind of target (DOM ID or selector) is set.
func TemplateData(m Message, data map[string]any) map[string]any {
	extra := map[string]any{
		DataKeyIsStream: true,
		DataKeyAction:   string(m.Action),
	}
	if m.Target != "" {
		extra[DataKeyTarget] = m.Target
	}
	if m.Targets != "" {
		extra[DataKeyTargets] = m.Targets
	}
	return templates.Merge(data, extra)
}

// RenderTemplate renders the first existing template among names into the message's content, then
// renders the message. The message's own Content is ignored. The template data passed to the
// renderer is also returned. Errors from the renderer are returned unchanged.
func RenderTemplate(
	ctx context.Context, r templates.Renderer, m Message, names []string, data map[string]any,
) (rendered string, merged map[string]any, err error) {
	if err = m.Validate(); err != nil {
		return "", nil, err
	}
	merged = TemplateData(m, data)
	if m.Content, err = templates.RenderString(ctx, r, names, merged); err != nil {
		return "", nil, err
	}
	rendered, err = m.Render()
	return rendered, merged, err
}

// NewTemplateResponse creates a response with a template rendered into a stream message. The
// response's Data is the template data passed to the renderer.
func NewTemplateResponse(
	ctx context.Context, r templates.Renderer, m Message, names []string, data map[string]any,
	status int,
) (*responses.Envelope, error) {
	body, merged, err := RenderTemplate(ctx, r, m, names, data)
	if err != nil {
		return nil, err
	}
	e := responses.New(ResponseContentType, body, status)
	e.Data = merged
	return e, nil
}
