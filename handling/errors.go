// Package handling provides utilities for code which writes responses on behalf of handlers.
package handling

import (
	"github.com/pkg/errors"
)

// Except returns nil if err matches any of the exceptions according to [errors.Is], and returns
// err unchanged otherwise. It's useful for suppressing expected errors, such as the
// [context.Canceled] resulting from a client closing its connection in the middle of a response.
func Except(err error, exceptions ...error) error {
	if err == nil {
		return nil
	}
	for _, exception := range exceptions {
		if errors.Is(err, exception) {
			return nil
		}
	}
	return err
}
