// Package turboframes provides server-side support for sending Hotwired Turbo Frames in HTTP
// responses.
package turboframes

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responses"
)

// ContentType is the value of the Content-Type header for Turbo Frame responses, which are
// ordinary HTML.
const ContentType = responses.HTMLContentType

// ErrMissingDOMID is returned for frames without a DOM ID.
var ErrMissingDOMID = errors.New("turbo frame has no dom id")

// Fragment represents a Turbo Frame.
type Fragment struct {
	DOMID string
	// Content is the HTML inside the frame. It's inserted verbatim.
	Content string
}

// Validate checks whether the frame can be rendered.
func (f Fragment) Validate() error {
	if f.DOMID == "" {
		return ErrMissingDOMID
	}
	return nil
}

// Render renders the frame as a turbo-frame element. Neither the DOM ID nor the content is escaped.
func (f Fragment) Render() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(`<turbo-frame id="`)
	b.WriteString(f.DOMID)
	b.WriteString(`">`)
	b.WriteString(f.Content)
	b.WriteString(`</turbo-frame>`)
	return b.String(), nil
}

// Render renders the content into a turbo-frame element with the DOM ID.
func Render(content, domID string) (string, error) {
	return Fragment{DOMID: domID, Content: content}.Render()
}

// RequestedFrame returns the DOM ID of the frame which Turbo requested, from the Turbo-Frame
// request header. It's empty for requests not made by a frame.
func RequestedFrame(h http.Header) string {
	return h.Get("Turbo-Frame")
}
