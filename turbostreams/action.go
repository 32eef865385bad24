package turbostreams

import (
	"github.com/pkg/errors"
)

// Action is the Turbo Stream action, i.e. the DOM mutation a stream message performs on its
// target. Its string value is the action's token in the message's action attribute.
type Action string

// Standard Turbo Stream actions.
const (
	ActionAppend  Action = "append"
	ActionPrepend Action = "prepend"
	ActionReplace Action = "replace"
	ActionUpdate  Action = "update"
	ActionRemove  Action = "remove"
	ActionBefore  Action = "before"
	ActionAfter   Action = "after"
)

// ErrUnknownAction is returned for actions which aren't standard Turbo Stream actions. Custom
// actions aren't supported.
var ErrUnknownAction = errors.New("unknown turbo stream action")

// Actions returns all standard Turbo Stream actions.
func Actions() []Action {
	return []Action{
		ActionAppend, ActionPrepend, ActionReplace, ActionUpdate, ActionRemove, ActionBefore,
		ActionAfter,
	}
}

// ParseAction looks up the standard Turbo Stream action with the token. Tokens are
// case-sensitive.
func ParseAction(token string) (Action, error) {
	a := Action(token)
	if !a.Valid() {
		return "", errors.Wrapf(ErrUnknownAction, "couldn't parse action %q", token)
	}
	return a, nil
}

// Valid checks whether the action is a standard Turbo Stream action.
func (a Action) Valid() bool {
	switch a {
	default:
		return false
	case ActionAppend, ActionPrepend, ActionReplace, ActionUpdate, ActionRemove, ActionBefore,
		ActionAfter:
		return true
	}
}

func (a Action) String() string {
	return string(a)
}
