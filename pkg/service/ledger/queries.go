package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
)

// GetStatement returns the account's entries ascending by timestamp. An account
// with no entries yields an EmptyResult error.
func (s *Service) GetStatement(ctx context.Context, accountNumber string) (entries []account.StatementEntry, err error) {
	defer s.observe(OpGetStatement, time.Now(), &err)
	logger := s.logger.With("op", OpGetStatement, "account", accountNumber)

	if err = domain.ValidateArguments(true, accountNumber); err != nil {
		return nil, s.fail(logger, OpGetStatement, err)
	}

	repo, err := s.uow.StatementRepository()
	if err != nil {
		return nil, s.fail(logger, OpGetStatement, domain.StoreFailure(err))
	}
	entries, err = repo.ListByAccount(ctx, accountNumber)
	if err != nil {
		return nil, s.fail(logger, OpGetStatement, domain.StoreFailure(err))
	}
	if len(entries) == 0 {
		return nil, s.fail(logger, OpGetStatement, domain.EmptyResult())
	}

	account.SortEntries(entries)
	logger.Debug("statement read", "entries", len(entries))
	return entries, nil
}

// GetAccounts returns all accounts ascending by account number. No accounts is a
// valid, empty result.
func (s *Service) GetAccounts(ctx context.Context) (accounts []account.Account, err error) {
	defer s.observe(OpGetAccounts, time.Now(), &err)
	logger := s.logger.With("op", OpGetAccounts)

	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, s.fail(logger, OpGetAccounts, domain.StoreFailure(err))
	}
	accounts, err = repo.List(ctx)
	if err != nil {
		return nil, s.fail(logger, OpGetAccounts, domain.StoreFailure(err))
	}
	if accounts == nil {
		accounts = []account.Account{}
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Number < accounts[j].Number })
	logger.Debug("accounts read", "count", len(accounts))
	return accounts, nil
}
