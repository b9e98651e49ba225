package markovrps

import (
	"github.com/pkg/errors"
)

// ErrInvalidState is returned when Empty, or a value outside the nine
// concrete states, is used as a matrix coordinate. Like
// game.ErrInvalidMove it signals a contract violation by the caller;
// the engine fails fast rather than clamping.
var ErrInvalidState = errors.New("state is not a valid matrix coordinate")
