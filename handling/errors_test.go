package handling

import (
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestExcept(t *testing.T) {
	other := errors.New("other")
	tests := []struct {
		name       string
		err        error
		exceptions []error
		want       error
	}{
		{name: "nil", err: nil, exceptions: []error{context.Canceled}, want: nil},
		{name: "matching", err: context.Canceled, exceptions: []error{context.Canceled}, want: nil},
		{
			name:       "wrapped match",
			err:        errors.Wrap(context.Canceled, "couldn't write"),
			exceptions: []error{io.EOF, context.Canceled},
			want:       nil,
		},
		{name: "no match", err: other, exceptions: []error{context.Canceled}, want: other},
		{name: "no exceptions", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Except(tt.err, tt.exceptions...); got != tt.want {
				t.Errorf("Except() = %v, want %v", got, tt.want)
			}
		})
	}
}
