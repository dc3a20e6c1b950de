package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// Process exit statuses.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2 // INVALID_INPUT
	ExitNotFound  = 3 // NOT_FOUND
	ExitRejected  = 4 // the model refused the edit
	ExitMalformed = 5 // MALFORMED_DOCUMENT
	ExitInterrupt = 130
)

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupt
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput:
		return ExitUsage
	case errors.ErrCodeNotFound:
		return ExitNotFound
	case errors.ErrCodeDuplicateID, errors.ErrCodeOutOfRange,
		errors.ErrCodeInvertNotPermitted, errors.ErrCodeUnsupported:
		return ExitRejected
	case errors.ErrCodeMalformedDocument:
		return ExitMalformed
	}
	return ExitFailure
}

// ReportError prints err for the user, with its code when it has one.
func ReportError(w io.Writer, err error) {
	if code := errors.GetCode(err); code != "" {
		printError(w, "%s", errors.UserMessage(err))
		printDetail(w, "code: %s", code)
		return
	}
	printError(w, "%v", err)
}
