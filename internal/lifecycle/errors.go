package lifecycle

import (
	"errors"
	"fmt"

	"github.com/orbit-tools/orbitup/internal/messages"
)

// ErrDeclined reports that the operator declined a confirmation prompt. It is
// a clean termination, not a failure; the CLI maps it to exit code 0.
var ErrDeclined = errors.New("declined by operator")

// PreconditionError reports a missing pre-existing asset the operation needs.
// The loader and icon are repository assets this tool never fetches, so the
// only remedy is pointing the operator back at install.
type PreconditionError struct {
	Path string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf(messages.AssetMissingFmt, e.Path)
}
