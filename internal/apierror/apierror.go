/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apierror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrInvalidAmount      ErrorCode = "INVALID_AMOUNT"
	ErrInsufficientFunds  ErrorCode = "INSUFFICIENT_FUNDS"
	ErrDuplicateAccount   ErrorCode = "DUPLICATE_ACCOUNT"
	ErrAccountNotFound    ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrInvalidArgument    ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidAccountKind ErrorCode = "INVALID_ACCOUNT_KIND"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAPIError builds a coded domain error. Message is meant to be shown to the
// account holder as is, Details carries whatever input caused the failure.
func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf returns the code of the first APIError found in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return "", false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// MapErrorToLogLevel maps domain errors to the level they are logged at by the
// interactive layer. Rejected operations are expected traffic, anything else is not.
func MapErrorToLogLevel(err error) logrus.Level {
	code, ok := CodeOf(err)
	if !ok {
		return logrus.ErrorLevel
	}
	switch code {
	case ErrInvalidAmount, ErrInsufficientFunds, ErrAccountNotFound, ErrInvalidArgument, ErrInvalidAccountKind:
		return logrus.InfoLevel
	case ErrDuplicateAccount:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
