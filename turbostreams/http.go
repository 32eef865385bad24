package turbostreams

import (
	"mime"
	"net/http"
	"strings"
)

// ContentType is the MIME type of Turbo Stream responses. Turbo lists it in the Accept header of
// form submissions to indicate that it accepts Turbo Stream responses.
const ContentType = "text/vnd.turbo-stream.html"

// ResponseContentType is the value of the Content-Type header for Turbo Stream responses.
const ResponseContentType = ContentType + "; charset=utf-8"

// Accepted checks the [http.Header]'s Accept header to determine whether the client accepts a
// Turbo Streams response. Media type parameters (such as quality values) are ignored.
func Accepted(h http.Header) bool {
	for _, value := range h.Values("Accept") {
		for _, a := range strings.Split(value, ",") {
			mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(a))
			if err == nil && mediaType == ContentType {
				return true
			}
		}
	}
	return false
}
