package errs

import (
	"errors"

	"github.com/and161185/stampcard/internal/model"
)

// OutcomeOf classifies the error returned by a scan into its terminal outcome.
// A nil error is an accepted scan. Unclassified errors are treated as backend
// failures so callers never mistake them for user-recoverable rejections.
func OutcomeOf(err error) model.Outcome {
	switch {
	case err == nil:
		return model.OutcomeAccepted
	case errors.Is(err, ErrInvalidToken):
		return model.OutcomeInvalidToken
	case errors.Is(err, ErrReplayRejected):
		return model.OutcomeReplayRejected
	case errors.Is(err, ErrTooSoon):
		return model.OutcomeTooSoon
	case errors.Is(err, ErrCardNotFound):
		return model.OutcomeCardNotFound
	case errors.Is(err, ErrConfiguration):
		return model.OutcomeConfigurationError
	default:
		return model.OutcomeBackendUnavailable
	}
}
