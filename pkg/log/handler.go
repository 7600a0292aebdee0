package log

import (
	"github.com/cockroachdb/errors"
)

// marshalStack is installed as zerolog.ErrorStackMarshaler. It emits the
// stack recorded by cockroachdb/errors.WithStack, if any.
func marshalStack(err error) interface{} {
	if stacktrace := extractStacktrace(err); stacktrace != "" {
		return stacktrace
	}
	return nil
}

func extractStacktrace(err error) string {
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		safeDetails := errors.GetSafeDetails(e).SafeDetails
		if len(safeDetails) > 0 {
			return safeDetails[0]
		}
	}
	return ""
}
