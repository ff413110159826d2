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

package banco

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/banco-digital/banco/config"
	"github.com/banco-digital/banco/database"
	"github.com/banco-digital/banco/internal/lock"
	"github.com/banco-digital/banco/model"
)

const tracerName = "Banco"

// Bank is the account registry. It owns the accounts, the account number
// sequence and the per-account locks every balance mutation goes through.
type Bank struct {
	datasource database.IDataSource
	locker     *lock.Locker[int64]
	notifier   model.Notifier
	branchCode int
	clock      func() time.Time
	tracer     trace.Tracer

	// createMu serializes account creation so a number is only issued for
	// an account that is actually stored.
	createMu   sync.Mutex
	lastNumber int64
}

type Option func(*Bank)

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(b *Bank) {
		b.clock = clock
	}
}

// WithTracerProvider makes the bank start its spans on tp instead of the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Bank) {
		b.tracer = tp.Tracer(tracerName)
	}
}

// NewBank initializes a new Bank on top of the provided datasource, using the
// branch code, currency symbol and time zone from the loaded configuration.
func NewBank(db database.IDataSource, opts ...Option) (*Bank, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	b := &Bank{
		datasource: db,
		locker:     lock.NewLocker[int64](),
		notifier:   model.NewNotifier(configuration.Bank.CurrencySymbol, configuration.Bank.Location()),
		branchCode: configuration.Bank.BranchCode,
		clock:      time.Now,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Notifier returns the formatter used to render account histories.
func (b *Bank) Notifier() model.Notifier {
	return b.notifier
}
