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

package apierror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/banco-digital/banco/internal/apierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	details := "-10"
	apiErr := apierror.NewAPIError(apierror.ErrInvalidAmount, "O valor informado deve ser maior que zero.", details)

	assert.Equal(t, apierror.ErrInvalidAmount, apiErr.Code)
	assert.Equal(t, "O valor informado deve ser maior que zero.", apiErr.Message)
	assert.Equal(t, details, apiErr.Details)
	assert.Equal(t, "INVALID_AMOUNT: O valor informado deve ser maior que zero.", apiErr.Error())
}

func TestCodeOfWrappedError(t *testing.T) {
	base := apierror.NewAPIError(apierror.ErrInsufficientFunds, "Saldo insuficiente.", nil)
	wrapped := fmt.Errorf("withdraw: %w", base)

	code, ok := apierror.CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrInsufficientFunds, code)
	assert.True(t, apierror.Is(wrapped, apierror.ErrInsufficientFunds))
	assert.False(t, apierror.Is(wrapped, apierror.ErrInvalidAmount))
	assert.Equal(t, "Saldo insuficiente.", apierror.MessageOf(wrapped))

	_, ok = apierror.CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "plain", apierror.MessageOf(errors.New("plain")))
}

func TestMapErrorToLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected logrus.Level
	}{
		{
			name:     "InvalidAmount Error",
			err:      apierror.NewAPIError(apierror.ErrInvalidAmount, "invalid amount", nil),
			expected: logrus.InfoLevel,
		},
		{
			name:     "InsufficientFunds Error",
			err:      apierror.NewAPIError(apierror.ErrInsufficientFunds, "insufficient funds", nil),
			expected: logrus.InfoLevel,
		},
		{
			name:     "AccountNotFound Error",
			err:      apierror.NewAPIError(apierror.ErrAccountNotFound, "not found", nil),
			expected: logrus.InfoLevel,
		},
		{
			name:     "DuplicateAccount Error",
			err:      apierror.NewAPIError(apierror.ErrDuplicateAccount, "duplicate", nil),
			expected: logrus.WarnLevel,
		},
		{
			name:     "Unknown Error",
			err:      errors.New("Unknown error"),
			expected: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apierror.MapErrorToLogLevel(tt.err))
		})
	}
}
