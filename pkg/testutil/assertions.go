package testutil

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/actionkit/pkg/errors"
)

// AssertErrorCode fails the test unless err carries code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error with code %s, got nil\n%s", code, formatMessage(msgAndArgs...))
		return
	}
	if got := errors.GetErrorCode(err); got != code {
		t.Errorf("Expected error code %s, got %s (%v)\n%s", code, got, err, formatMessage(msgAndArgs...))
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
