package common

import (
	"go-bank-ledger/logger"

	"github.com/sirupsen/logrus"
)

// AppError pairs a stable machine-readable code with a human-readable
// message. The code is what callers and the harness report; the wrapped
// error keeps the underlying cause for logging.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Report logs the error with its code and internal cause attached.
func (e *AppError) Report() {
	entry := logger.Log.WithFields(logrus.Fields{
		"code": e.Code,
	})
	if e.Err != nil {
		entry = entry.WithField("internal_error", e.Err.Error())
	}
	entry.Error(e.Message)
}
