package ledger

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Withdraw debits amount plus the withdrawal fee from the account and returns the
// updated account. It appends two entries: the withdrawal and its fee.
func (s *Service) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (acct *account.Account, err error) {
	defer s.observe(OpWithdraw, time.Now(), &err)
	logger := s.logger.With("op", OpWithdraw, "account", accountNumber, "amount", amount.String())

	if err = domain.ValidateArguments(amount.IsPositive(), accountNumber); err != nil {
		return nil, s.fail(logger, OpWithdraw, err)
	}

	ts := s.now().UTC()
	var newBalance, withdrawalFee decimal.Decimal
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, statements, err := getRepositories(uow)
		if err != nil {
			return err
		}
		balance, err := accounts.GetBalanceForUpdate(ctx, accountNumber)
		if err != nil {
			return domain.StoreFailure(err)
		}
		if balance == nil {
			return domain.SourceNotFound()
		}
		fees, err := s.currentFees(ctx, uow)
		if err != nil {
			return err
		}
		withdrawalFee = fees.WithdrawalFee
		if balance.LessThan(amount.Add(withdrawalFee)) {
			return domain.InsufficientFunds()
		}

		newBalance = balance.Sub(amount).Sub(withdrawalFee)
		if err := accounts.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, accountNumber, ts, account.DescWithdrawal,
			amount.Neg(), newBalance.Add(withdrawalFee)); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, accountNumber, ts, account.DescWithdrawalFee,
			withdrawalFee.Neg(), newBalance); err != nil {
			return domain.StoreFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(logger, OpWithdraw, scopeError(err))
	}

	logger.Info("withdraw committed", "balance", newBalance.String(), "fee", withdrawalFee.String())
	s.emit(ctx, logger, &events.WithdrawalPosted{
		Posted:        events.Posted{ID: uuid.New(), Amount: amount, Fee: withdrawalFee, OccurredAt: ts},
		AccountNumber: accountNumber,
		Balance:       newBalance,
	})
	return &account.Account{Number: accountNumber, Balance: newBalance}, nil
}

// Deposit credits amount minus the percentage deposit fee. It appends two entries:
// the deposit and its fee. Callers re-query the balance if they need it.
func (s *Service) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (err error) {
	defer s.observe(OpDeposit, time.Now(), &err)
	logger := s.logger.With("op", OpDeposit, "account", accountNumber, "amount", amount.String())

	if err = domain.ValidateArguments(amount.IsPositive(), accountNumber); err != nil {
		return s.fail(logger, OpDeposit, err)
	}

	ts := s.now().UTC()
	var newBalance, depositFee decimal.Decimal
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, statements, err := getRepositories(uow)
		if err != nil {
			return err
		}
		balance, err := accounts.GetBalanceForUpdate(ctx, accountNumber)
		if err != nil {
			return domain.StoreFailure(err)
		}
		if balance == nil {
			return domain.SourceNotFound()
		}
		fees, err := s.currentFees(ctx, uow)
		if err != nil {
			return err
		}

		depositFee = fees.DepositFee(amount)
		newBalance = balance.Add(amount).Sub(depositFee)
		if err := accounts.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, accountNumber, ts, account.DescDeposit,
			amount, newBalance.Add(depositFee)); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, accountNumber, ts, account.DescDepositFee,
			depositFee.Neg(), newBalance); err != nil {
			return domain.StoreFailure(err)
		}
		return nil
	})
	if err != nil {
		return s.fail(logger, OpDeposit, scopeError(err))
	}

	logger.Info("deposit committed", "balance", newBalance.String(), "fee", depositFee.String())
	s.emit(ctx, logger, &events.DepositPosted{
		Posted:        events.Posted{ID: uuid.New(), Amount: amount, Fee: depositFee, OccurredAt: ts},
		AccountNumber: accountNumber,
		Balance:       newBalance,
	})
	return nil
}

// Transfer debits amount plus the transfer fee from the source and credits amount to
// the destination, all in one scope. Both accounts are locked in account-number
// order regardless of direction.
func (s *Service) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (err error) {
	defer s.observe(OpTransfer, time.Now(), &err)
	logger := s.logger.With("op", OpTransfer, "from", from, "to", to, "amount", amount.String())

	if err = domain.ValidateArguments(amount.IsPositive(), from, to); err != nil {
		return s.fail(logger, OpTransfer, err)
	}

	ts := s.now().UTC()
	var sourceBalance, destinationBalance, transferFee decimal.Decimal
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, statements, err := getRepositories(uow)
		if err != nil {
			return err
		}

		balances := make(map[string]*decimal.Decimal, 2)
		first, second := account.LockOrder(from, to)
		for _, n := range []string{first, second} {
			b, err := accounts.GetBalanceForUpdate(ctx, n)
			if err != nil {
				return domain.StoreFailure(err)
			}
			balances[n] = b
		}
		source, destination := balances[from], balances[to]
		if source == nil {
			return domain.SourceNotFound()
		}
		if destination == nil {
			return domain.DestinationNotFound()
		}
		fees, err := s.currentFees(ctx, uow)
		if err != nil {
			return err
		}
		transferFee = fees.TransferFee
		if source.LessThan(amount.Add(transferFee)) {
			return domain.InsufficientFunds()
		}

		sourceBalance = source.Sub(amount).Sub(transferFee)
		destinationBalance = destination.Add(amount)
		if err := accounts.UpdateBalance(ctx, from, sourceBalance); err != nil {
			return domain.StoreFailure(err)
		}
		if err := accounts.UpdateBalance(ctx, to, destinationBalance); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, from, ts, account.TransferTo(to),
			amount.Neg(), sourceBalance.Add(transferFee)); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, from, ts, account.DescTransferFee,
			transferFee.Neg(), sourceBalance); err != nil {
			return domain.StoreFailure(err)
		}
		if err := statements.Save(ctx, to, ts, account.TransferFrom(from),
			amount, destinationBalance); err != nil {
			return domain.StoreFailure(err)
		}
		return nil
	})
	if err != nil {
		return s.fail(logger, OpTransfer, scopeError(err))
	}

	logger.Info("transfer committed",
		"source_balance", sourceBalance.String(),
		"destination_balance", destinationBalance.String(),
		"fee", transferFee.String(),
	)
	s.emit(ctx, logger, &events.TransferPosted{
		Posted:             events.Posted{ID: uuid.New(), Amount: amount, Fee: transferFee, OccurredAt: ts},
		SourceAccount:      from,
		DestinationAccount: to,
		SourceBalance:      sourceBalance,
		DestinationBalance: destinationBalance,
	})
	return nil
}
