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
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/banco-digital/banco/internal/apierror"
	"github.com/banco-digital/banco/model"
)

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, apierror.MessageOf(err))
	return err
}

// Deposit credits account and records the entry under the account lock.
func (b *Bank) Deposit(ctx context.Context, account *model.Account, amount decimal.Decimal) error {
	_, span := b.tracer.Start(ctx, "Deposit")
	defer span.End()
	span.SetAttributes(attribute.Int64("account.number", account.Number()), attribute.String("amount", amount.String()))

	unlock := b.locker.Lock(account.Number())
	defer unlock()

	if err := account.Deposit(amount, b.clock()); err != nil {
		return recordError(span, err)
	}
	return nil
}

// Withdraw debits account and records the entry under the account lock.
func (b *Bank) Withdraw(ctx context.Context, account *model.Account, amount decimal.Decimal) error {
	_, span := b.tracer.Start(ctx, "Withdraw")
	defer span.End()
	span.SetAttributes(attribute.Int64("account.number", account.Number()), attribute.String("amount", amount.String()))

	unlock := b.locker.Lock(account.Number())
	defer unlock()

	if err := account.Withdraw(amount, b.clock()); err != nil {
		return recordError(span, err)
	}
	return nil
}

// Transfer moves amount from source to the account registered under
// recipientTaxID. The recipient is resolved before the amount is checked.
// Both accounts are locked, lowest number first, for the whole debit, credit
// and history write.
func (b *Bank) Transfer(ctx context.Context, source *model.Account, amount decimal.Decimal, recipientTaxID string) error {
	_, span := b.tracer.Start(ctx, "Transfer")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("source.number", source.Number()),
		attribute.String("amount", amount.String()),
	)

	if recipientTaxID == source.Client().TaxID() {
		return recordError(span, apierror.NewAPIError(apierror.ErrInvalidArgument, "Não é permitido realizar transferências para sua própria conta.", recipientTaxID))
	}
	destination := b.FindByTaxID(recipientTaxID)
	if destination == nil {
		return recordError(span, apierror.NewAPIError(apierror.ErrAccountNotFound, "Não encontramos uma conta associada a este CPF. Verifique o número e tente novamente.", recipientTaxID))
	}
	span.SetAttributes(attribute.Int64("destination.number", destination.Number()))

	unlock := b.locker.Lock(source.Number(), destination.Number())
	defer unlock()

	if err := model.ApplyTransfer(source, destination, amount, b.clock()); err != nil {
		return recordError(span, err)
	}
	return nil
}

// Execute dispatches a service request on account. recipientTaxID is only
// read for transfers.
func (b *Bank) Execute(ctx context.Context, account *model.Account, service model.ServiceKind, amount decimal.Decimal, recipientTaxID string) error {
	ctx, span := b.tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(attribute.String("service", service.String()))

	var err error
	switch service {
	case model.ServiceWithdraw:
		err = b.Withdraw(ctx, account, amount)
	case model.ServiceDeposit:
		err = b.Deposit(ctx, account, amount)
	case model.ServiceTransfer:
		err = b.Transfer(ctx, account, amount, recipientTaxID)
	default:
		err = apierror.NewAPIError(apierror.ErrInvalidArgument, "Serviço desconhecido.", service)
	}
	if err != nil {
		return recordError(span, err)
	}
	return nil
}
