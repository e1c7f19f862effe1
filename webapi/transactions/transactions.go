// Package transactions exposes the ledger engine over HTTP.
package transactions

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/middleware"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the ledger endpoints. Every route needs a bearer token; writes
// require the operator role and reads accept reader or operator.
//
// Routes:
//   - POST /transactions/withdraw                    : Withdraw from an account.
//   - POST /transactions/deposit                     : Deposit into an account.
//   - POST /transactions/transfer                    : Move funds between two accounts.
//   - GET  /transactions/statements/:accountNumber   : Statement of one account.
//   - GET  /transactions/accounts                    : All accounts and balances.
func Routes(app *fiber.App, svc *ledger.Service, cfg *config.App) {
	group := app.Group("/transactions", middleware.JwtProtected(cfg.Jwt))
	write := middleware.RequireRole(middleware.RoleOperator)
	read := middleware.RequireRole(middleware.RoleReader, middleware.RoleOperator)

	group.Post("/withdraw", write, Withdraw(svc))
	group.Post("/deposit", write, Deposit(svc))
	group.Post("/transfer", write, Transfer(svc))
	group.Get("/statements/:accountNumber", read, GetStatement(svc))
	group.Get("/accounts", read, GetAccounts(svc))
}

// Withdraw debits the amount plus the withdrawal fee and returns the updated account.
func Withdraw(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		acct, err := svc.Withdraw(c.UserContext(), input.AccountNumber, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", acct)
	}
}

// Deposit credits the amount minus the deposit fee.
func Deposit(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		if err := svc.Deposit(c.UserContext(), input.AccountNumber, input.Amount); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", fiber.Map{})
	}
}

// Transfer moves the amount between two accounts, charging the transfer fee to the
// source.
func Transfer(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		err = svc.Transfer(c.UserContext(), input.FromAccountNumber, input.ToAccountNumber, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", fiber.Map{})
	}
}

// GetStatement returns the account's entries in chronological order.
func GetStatement(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.GetStatement(c.UserContext(), c.Params("accountNumber"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement fetched", entries)
	}
}

// GetAccounts lists every account.
func GetAccounts(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.GetAccounts(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", accounts)
	}
}
