package turbostreams

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRender(t *testing.T) {
	tests := []struct {
		content string
		action  Action
		target  string
		want    string
	}{
		{
			"OK", ActionUpdate, "test",
			`<turbo-stream action="update" target="test"><template>OK</template></turbo-stream>`,
		},
		{
			"", ActionRemove, "item-1",
			`<turbo-stream action="remove" target="item-1"><template></template></turbo-stream>`,
		},
		{
			"<b>a & b</b>", ActionAppend, "list",
			`<turbo-stream action="append" target="list"><template><b>a & b</b></template></turbo-stream>`,
		},
	}
	for _, test := range tests {
		got, err := Render(test.content, test.action, test.target)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("Render(%q, %q, %q) = %q, want %q",
				test.content, test.action, test.target, got, test.want)
		}
	}
}

func TestRenderTargets(t *testing.T) {
	got, err := Message{Action: ActionReplace, Targets: ".todo", Content: "x"}.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := `<turbo-stream action="replace" targets=".todo"><template>x</template></turbo-stream>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderRejectsInvalidMessages(t *testing.T) {
	tests := []struct {
		message Message
		want    error
	}{
		{Message{Action: "morph", Target: "test"}, ErrUnknownAction},
		{Message{Target: "test"}, ErrUnknownAction},
		{Message{Action: ActionUpdate}, ErrMissingTarget},
		{Message{Action: ActionUpdate, Target: "a", Targets: ".a"}, ErrAmbiguousTarget},
	}
	for _, test := range tests {
		got, err := test.message.Render()
		if !errors.Is(err, test.want) {
			t.Errorf("%+v.Render() error = %v, want %v", test.message, err, test.want)
		}
		if got != "" {
			t.Errorf("%+v.Render() produced output %q", test.message, got)
		}
	}
}

func TestRenderAll(t *testing.T) {
	got, err := RenderAll(
		Message{Action: ActionAppend, Target: "list", Content: "1"},
		Message{Action: ActionAppend, Target: "list", Content: "1"},
		Message{Action: ActionRemove, Target: "old"},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `<turbo-stream action="append" target="list"><template>1</template></turbo-stream>` +
		`<turbo-stream action="append" target="list"><template>1</template></turbo-stream>` +
		`<turbo-stream action="remove" target="old"><template></template></turbo-stream>`
	if got != want {
		t.Errorf("RenderAll() = %q, want %q", got, want)
	}

	if _, err := RenderAll(Message{Action: ActionAppend, Target: "list"}, Message{}); err == nil {
		t.Error("RenderAll with an invalid message succeeded")
	}
}
