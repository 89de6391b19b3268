package listapi_test

import (
	"errors"
	"testing"

	"github.com/list-fmph/list-submit/srvcerror"
	"github.com/stretchr/testify/require"
)

// requireErrCode asserts that err is a service error carrying the given
// error code.
func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected a service error, got %T: %v", err, err)
	require.Equal(t, code, srvcErr.ErrorCode(), "error: %v, debug: %v", err, srvcErr.DebugInfo())
}
