package gradesrvc

import (
	"github.com/list-fmph/list-submit/srvcerror"
)

const ErrCodePollingCancelled = "polling_cancelled"

func newErrPollingCancelled() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePollingCancelled,
		"gave up waiting for the test run to finish",
	)
}
