package turboframes

import (
	"context"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
)

// Keys added to the data of templates rendered into frames.
const (
	DataKeyIsFrame = "is_turbo_frame"
	DataKeyDOMID   = "turbo_frame_dom_id"
)

// NewResponse creates a response with the content rendered into a frame. A status of 0 means 200.
func NewResponse(content, domID string, status int) (*responses.Envelope, error) {
	body, err := Render(content, domID)
	if err != nil {
		return nil, err
	}
	return responses.New(ContentType, body, status), nil
}

// TemplateData returns a copy of data with the frame's DOM ID added under the reserved keys.
func TemplateData(domID string, data map[string]any) map[string]any {
	return templates.Merge(data, map[string]any{
		DataKeyIsFrame: true,
		DataKeyDOMID:   domID,
	})
}

// RenderTemplate renders the first existing template among names into a frame with the DOM ID.
// The template data passed to the renderer is also returned. Errors from the renderer are returned
// unchanged.
func RenderTemplate(
	ctx context.Context, r templates.Renderer, domID string, names []string, data map[string]any,
) (rendered string, merged map[string]any, err error) {
	f := Fragment{DOMID: domID}
	if err = f.Validate(); err != nil {
		return "", nil, err
	}
	merged = TemplateData(domID, data)
	if f.Content, err = templates.RenderString(ctx, r, names, merged); err != nil {
		return "", nil, err
	}
	rendered, err = f.Render()
	return rendered, merged, err
}

// NewTemplateResponse creates a response with a template rendered into a frame. The response's
// Data is the template data passed to the renderer.
func NewTemplateResponse(
	ctx context.Context, r templates.Renderer, domID string, names []string, data map[string]any,
	status int,
) (*responses.Envelope, error) {
	body, merged, err := RenderTemplate(ctx, r, domID, names, data)
	if err != nil {
		return nil, err
	}
	e := responses.New(ContentType, body, status)
	e.Data = merged
	return e, nil
}
