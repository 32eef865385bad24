// Package turbostreams provides server-side support for sending Hotwired Turbo Streams in HTTP
// responses, either all at once or streamed as they're produced.
package turbostreams

import (
	"strings"

	"github.com/pkg/errors"
)

// Errors for messages which can't be rendered.
var (
	ErrMissingTarget   = errors.New("turbo stream message has no target")
	ErrAmbiguousTarget = errors.New("turbo stream message has both a target and targets")
)

// Message represents a Turbo Stream message. The message's target is either the DOM ID in Target
// or all elements matching the CSS selector in Targets, but not both.
type Message struct {
	Action  Action
	Target  string
	Targets string
	// Content is the HTML inside the message's template element. It's inserted verbatim, so it must
	// already be escaped as needed. It's conventionally empty for ActionRemove.
	Content string
}

// Validate checks whether the message can be rendered.
func (m Message) Validate() error {
	if !m.Action.Valid() {
		return errors.Wrapf(ErrUnknownAction, "couldn't validate action %q", m.Action)
	}
	if m.Target == "" && m.Targets == "" {
		return ErrMissingTarget
	}
	if m.Target != "" && m.Targets != "" {
		return errors.Wrapf(
			ErrAmbiguousTarget, "target %q conflicts with targets %q", m.Target, m.Targets,
		)
	}
	return nil
}

// Render renders the message as a turbo-stream element. Neither the target nor the content is
// escaped.
func (m Message) Render() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	m.write(&b)
	return b.String(), nil
}

func (m Message) write(b *strings.Builder) {
	b.WriteString(`<turbo-stream action="`)
	b.WriteString(string(m.Action))
	if m.Targets != "" {
		b.WriteString(`" targets="`)
		b.WriteString(m.Targets)
	} else {
		b.WriteString(`" target="`)
		b.WriteString(m.Target)
	}
	b.WriteString(`"><template>`)
	b.WriteString(m.Content)
	b.WriteString(`</template></turbo-stream>`)
}

// Render renders the content into a turbo-stream element with the action and target.
func Render(content string, action Action, target string) (string, error) {
	return Message{Action: action, Target: target, Content: content}.Render()
}

// RenderAll renders the messages in order into a concatenation of turbo-stream elements. Messages
// are neither reordered nor deduplicated. If any message is invalid, nothing is rendered.
func RenderAll(messages ...Message) (string, error) {
	for i, m := range messages {
		if err := m.Validate(); err != nil {
			return "", errors.Wrapf(err, "couldn't render message %d", i)
		}
	}
	var b strings.Builder
	for _, m := range messages {
		m.write(&b)
	}
	return b.String(), nil
}
