// Package views renders Turbo Stream and Turbo Frame responses for request handlers, based on
// whichever capabilities a handler provides. Handlers implement only the interfaces they need.
package views

import (
	"github.com/sargassum-world/turboresponse/turbostreams"
)

// TemplateNameProvider is implemented by handlers rendering templates. TemplateNames returns the
// candidate names of the handler's full template, in priority order.
type TemplateNameProvider interface {
	TemplateNames() []string
}

// StreamTemplateNameProvider is implemented by handlers with an explicitly-configured template for
// stream messages. When ok is true, name is used instead of the partials of the handler's
// TemplateNames, even if name is empty.
type StreamTemplateNameProvider interface {
	StreamTemplateName() (name string, ok bool)
}

// FragmentActionProvider is implemented by handlers responding with stream messages.
type FragmentActionProvider interface {
	StreamAction() turbostreams.Action
	StreamTarget() string
}

// FrameDOMIDProvider is implemented by handlers responding with frames.
type FrameDOMIDProvider interface {
	FrameDOMID() string
}

// ResponseContentProvider is implemented by handlers which render their fragment content without
// templates.
type ResponseContentProvider interface {
	ResponseContent() (string, error)
}

// TemplateDataProvider is implemented by handlers which add their own template data. TemplateData
// returns the data for rendering, which should include the entries of extra.
type TemplateDataProvider interface {
	TemplateData(extra map[string]any) map[string]any
}
