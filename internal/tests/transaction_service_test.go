package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/memory"
	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/services"
	"github.com/shopspring/decimal"
)

type transactionFixture struct {
	svc             *services.TransactionService
	accountRepo     *memory.AccountRepository
	transactionRepo *memory.TransactionRepository
	account         domain.BankAccount
}

func newTransactionFixture(t *testing.T, ownerID, initialBalance string) transactionFixture {
	t.Helper()

	accountRepo := memory.NewAccountRepository()
	transactionRepo := memory.NewTransactionRepository(accountRepo)

	account, err := accountRepo.Create(context.Background(), domain.BankAccount{
		OwnerID:     ownerID,
		AccountType: "personal",
		Balance:     decimal.RequireFromString(initialBalance),
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}

	return transactionFixture{
		svc:             services.NewTransactionService(accountRepo, transactionRepo),
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		account:         account,
	}
}

func amountPtr(raw string) *decimal.Decimal {
	amount := decimal.RequireFromString(raw)
	return &amount
}

func TestTransactionServiceDepositWithdrawScenario(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "500.0")
	ctx := context.Background()

	resp, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("150.0"),
		Type:   "DEPOSIT",
	})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !resp.Data.UpdatedBalance.Equal(decimal.RequireFromString("650.0")) {
		t.Fatalf("expected balance 650 after deposit, got %s", resp.Data.UpdatedBalance)
	}

	_, err = fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("800.0"),
		Type:   "WITHDRAWAL",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	account, err := fx.accountRepo.GetByID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	if !account.Balance.Equal(decimal.RequireFromString("650.0")) {
		t.Fatalf("failed withdrawal must not move balance, got %s", account.Balance)
	}
	ledger, err := fx.transactionRepo.GetAllByAccountID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(ledger) != 1 {
		t.Fatalf("failed withdrawal must not append a ledger entry, got %d entries", len(ledger))
	}

	resp, err = fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("650.0"),
		Type:   "WITHDRAWAL",
	})
	if err != nil {
		t.Fatalf("withdraw all: %v", err)
	}
	if !resp.Data.UpdatedBalance.IsZero() {
		t.Fatalf("expected zero balance, got %s", resp.Data.UpdatedBalance)
	}
}

func TestTransactionServiceLedgerReplayReproducesBalances(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "100")
	ctx := context.Background()

	steps := []struct {
		amount string
		txType string
	}{
		{"25.50", "DEPOSIT"},
		{"10", "WITHDRAWAL"},
		{"4.50", "DEPOSIT"},
		{"120", "WITHDRAWAL"},
	}
	for _, step := range steps {
		if _, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
			Amount: amountPtr(step.amount),
			Type:   step.txType,
		}); err != nil {
			t.Fatalf("apply %s %s: %v", step.txType, step.amount, err)
		}
	}

	listResp, err := fx.svc.ListTransactions(ctx, fx.account.ID, "u-1")
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	entries := listResp.Data.Transactions

	// Listing is newest first; replay oldest first.
	replayed := decimal.RequireFromString("100")
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		switch entry.Type {
		case "DEPOSIT":
			replayed = replayed.Add(entry.Amount)
		case "WITHDRAWAL":
			replayed = replayed.Sub(entry.Amount)
		default:
			t.Fatalf("unexpected entry type %q", entry.Type)
		}
		if !replayed.Equal(entry.UpdatedBalance) {
			t.Fatalf("replay diverged at entry %s: got %s, snapshot %s", entry.TransactionID, replayed, entry.UpdatedBalance)
		}
	}

	account, err := fx.accountRepo.GetByID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	if !replayed.Equal(account.Balance) {
		t.Fatalf("replayed balance %s does not match stored balance %s", replayed, account.Balance)
	}
}

func TestTransactionServiceConcurrentDepositsSerialize(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "0")
	ctx := context.Background()

	const workers = 100
	amount := decimal.RequireFromString("1.0")

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
				Amount: &amount,
				Type:   "DEPOSIT",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent deposit: %v", err)
		}
	}

	account, err := fx.accountRepo.GetByID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	want := amount.Mul(decimal.NewFromInt(workers))
	if !account.Balance.Equal(want) {
		t.Fatalf("lost update: expected balance %s, got %s", want, account.Balance)
	}

	// Every snapshot must sit on the replayed balance line.
	ledger, err := fx.transactionRepo.GetAllByAccountID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(ledger) != workers {
		t.Fatalf("expected %d ledger entries, got %d", workers, len(ledger))
	}
	replayed := decimal.Zero
	for i := len(ledger) - 1; i >= 0; i-- {
		replayed = replayed.Add(ledger[i].Amount)
		if !replayed.Equal(ledger[i].BalanceAfter) {
			t.Fatalf("replay diverged at entry %s: got %s, snapshot %s", ledger[i].ID, replayed, ledger[i].BalanceAfter)
		}
	}
}

func TestTransactionServiceLedgerInconsistencySurfaces(t *testing.T) {
	svc := services.NewTransactionService(accountRepoStub{
		getByIDFn: func(_ context.Context, id string) (domain.BankAccount, error) {
			return domain.BankAccount{
				ID:          id,
				OwnerID:     "u-1",
				AccountType: "personal",
				Balance:     decimal.RequireFromString("1000"),
			}, nil
		},
	}, transactionRepoStub{
		applyFn: func(_ context.Context, _ string, _ decimal.Decimal, _ domain.TransactionType) (domain.Transaction, error) {
			return domain.Transaction{}, domain.ErrLedgerInconsistent
		},
	})

	resp, err := svc.CreateTransaction(context.Background(), "a-1", "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("100"),
		Type:   "DEPOSIT",
	})
	if !errors.Is(err, domain.ErrLedgerInconsistent) {
		t.Fatalf("expected ErrLedgerInconsistent to propagate, got %v", err)
	}
	if resp.Message != "transaction failed" {
		t.Fatalf("unexpected envelope message %q", resp.Message)
	}
	found := false
	for _, detail := range resp.Errors {
		if detail == "Account state requires manual reconciliation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected reconciliation detail in envelope, got %v", resp.Errors)
	}
}

func TestTransactionServiceNonOwnerDenied(t *testing.T) {
	fx := newTransactionFixture(t, "user-a", "1000.0")
	ctx := context.Background()

	resp, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "user-b", models.CreateTransactionRequest{
		Amount: amountPtr("100"),
		Type:   "DEPOSIT",
	})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if resp.Data != nil {
		t.Fatal("expected no transaction fields in denied response")
	}

	ledger, err := fx.transactionRepo.GetAllByAccountID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("denied transaction must not append a ledger entry, got %d entries", len(ledger))
	}
}

func TestTransactionServiceAccountNotFoundBeforeOwnership(t *testing.T) {
	fx := newTransactionFixture(t, "user-a", "1000.0")

	// A non-owner probing a nonexistent account sees NotFound, never denied.
	_, err := fx.svc.CreateTransaction(context.Background(), "no-such-account", "user-b", models.CreateTransactionRequest{
		Amount: amountPtr("100"),
		Type:   "DEPOSIT",
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestTransactionServiceCreateTransactionValidation(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "100")
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreateTransactionRequest
	}{
		{"missing amount", models.CreateTransactionRequest{Type: "DEPOSIT"}},
		{"zero amount", models.CreateTransactionRequest{Amount: amountPtr("0"), Type: "DEPOSIT"}},
		{"negative amount", models.CreateTransactionRequest{Amount: amountPtr("-5"), Type: "DEPOSIT"}},
		{"unknown type", models.CreateTransactionRequest{Amount: amountPtr("5"), Type: "TRANSFER"}},
	}
	for _, tc := range cases {
		if _, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", tc.req); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}

	ledger, err := fx.transactionRepo.GetAllByAccountID(ctx, fx.account.ID)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("rejected requests must not append ledger entries, got %d", len(ledger))
	}
}

func TestTransactionServiceGetTransactionUnknownID(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "100")

	_, err := fx.svc.GetTransaction(context.Background(), fx.account.ID, "u-1", "999")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestTransactionServiceGetTransactionCrossAccountHidden(t *testing.T) {
	accountRepo := memory.NewAccountRepository()
	transactionRepo := memory.NewTransactionRepository(accountRepo)
	svc := services.NewTransactionService(accountRepo, transactionRepo)
	ctx := context.Background()

	first, err := accountRepo.Create(ctx, domain.BankAccount{OwnerID: "u-1", AccountType: "personal", Balance: decimal.RequireFromString("100")})
	if err != nil {
		t.Fatalf("seed first account: %v", err)
	}
	second, err := accountRepo.Create(ctx, domain.BankAccount{OwnerID: "u-1", AccountType: "savings", Balance: decimal.RequireFromString("100")})
	if err != nil {
		t.Fatalf("seed second account: %v", err)
	}

	txn, err := transactionRepo.Apply(ctx, second.ID, decimal.RequireFromString("10"), domain.TransactionTypeDeposit)
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	// Real transaction id, wrong account in the path: must look missing.
	_, err = svc.GetTransaction(ctx, first.ID, "u-1", txn.ID)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for cross-account lookup, got %v", err)
	}
}

func TestTransactionServiceGetTransactionReturnsSnapshot(t *testing.T) {
	fx := newTransactionFixture(t, "u-1", "500")
	ctx := context.Background()

	created, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("100"),
		Type:   "DEPOSIT",
	})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}

	// Move the balance again so snapshot and current balance differ.
	if _, err := fx.svc.CreateTransaction(ctx, fx.account.ID, "u-1", models.CreateTransactionRequest{
		Amount: amountPtr("50"),
		Type:   "WITHDRAWAL",
	}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	fetched, err := fx.svc.GetTransaction(ctx, fx.account.ID, "u-1", created.Data.TransactionID)
	if err != nil {
		t.Fatalf("get transaction: %v", err)
	}
	if !fetched.Data.UpdatedBalance.Equal(decimal.RequireFromString("600")) {
		t.Fatalf("expected immutable snapshot 600, got %s", fetched.Data.UpdatedBalance)
	}
}
