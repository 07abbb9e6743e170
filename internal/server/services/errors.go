package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puisi/internal/common"
)

// internalError hides err behind common.ErrorInternal while keeping it in
// the chain for logging.
func internalError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrorInternal, err)
}

// repoError passes common.ErrorNotFound through and turns anything else
// into an internal error.
func repoError(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return internalError(op, err)
}
