package ledger

import (
	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the postgres repositories. fakeTransactionRepo
// mirrors MutateWithAccount's commit semantics, including the zero-floor
// clamp, so the usecases run against the same contract as production.

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
}

func newFakeAccountRepo(accounts ...*domain.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*domain.Account)}
	for _, acc := range accounts {
		r.accounts[acc.ID] = acc
	}
	return r
}

func (r *fakeAccountRepo) GetAccountByID(accountID string) (*domain.Account, error) {
	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (r *fakeAccountRepo) ListAccountIDs() ([]string, error) { return nil, nil }

func (r *fakeAccountRepo) GetAccountsByIDs(ids []string) ([]*domain.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) UpdateTierFields(accountID string, current, next domain.TierKey, nextAmount decimal.Decimal) error {
	acc, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.CurrentTier = current
	acc.NextTier = next
	acc.NextAmountToUpgrade = nextAmount
	return nil
}

func (r *fakeAccountRepo) CreditEarnings(accountID string, amount decimal.Decimal, destination domain.EarningsDestination) error {
	acc, ok := r.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if destination == domain.EarningsToProfit {
		acc.Profit = acc.Profit.Add(amount)
	} else {
		acc.Balance = acc.Balance.Add(amount)
	}
	return nil
}

func (r *fakeAccountRepo) ApplyTradeResult(accountID string, pl decimal.Decimal) (*domain.TradeApplication, error) {
	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	acc.Profit = acc.Profit.Add(pl)
	newBalance := acc.Balance.Add(pl)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	acc.Balance = newBalance
	return &domain.TradeApplication{NewBalance: acc.Balance, NewProfit: acc.Profit}, nil
}

type fakeTransactionRepo struct {
	txns     map[string]*domain.Transaction
	accounts *fakeAccountRepo
}

func newFakeTransactionRepo(accounts *fakeAccountRepo, txns ...*domain.Transaction) *fakeTransactionRepo {
	r := &fakeTransactionRepo{txns: make(map[string]*domain.Transaction), accounts: accounts}
	for _, txn := range txns {
		r.txns[txn.ID] = txn
	}
	return r
}

func (r *fakeTransactionRepo) CreateTransaction(txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = "txn-" + txn.Reference
	}
	cp := *txn
	r.txns[txn.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	txn, ok := r.txns[txnID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *txn
	return &cp, nil
}

func (r *fakeTransactionRepo) MutateWithAccount(txnID string, fn domain.MutationFunc) (*domain.MutationResult, error) {
	txn, ok := r.txns[txnID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	acc, ok := r.accounts.accounts[txn.AccountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	txnCopy := *txn
	accCopy := *acc
	mut, err := fn(&txnCopy, &accCopy)
	if err != nil {
		return nil, err
	}

	oldStatus, oldAmount := txn.Status, txn.Amount
	applied := mut.BalanceDelta
	newBalance := acc.Balance.Add(applied)
	clamped := false
	if mut.ClampBalance && newBalance.IsNegative() {
		applied = acc.Balance.Neg()
		newBalance = decimal.Zero
		clamped = true
	}

	txn.Status = mut.Status
	txn.Amount = mut.Amount
	txn.Currency = mut.Currency
	txn.Description = mut.Description
	txn.Reference = mut.Reference
	acc.Balance = newBalance

	txnRes := *txn
	accRes := *acc
	return &domain.MutationResult{
		Transaction:  &txnRes,
		Account:      &accRes,
		OldStatus:    oldStatus,
		OldAmount:    oldAmount,
		AppliedDelta: applied,
		Clamped:      clamped,
	}, nil
}

func (r *fakeTransactionRepo) SumCompletedDeposits(accountID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, txn := range r.txns {
		if txn.AccountID == accountID && txn.Kind == domain.KindDeposit && txn.Status == domain.StatusCompleted {
			total = total.Add(txn.Amount)
		}
	}
	return total, nil
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
}

func (r *fakeNotificationRepo) CreateNotification(n *domain.Notification) error {
	if n.ID == "" {
		n.ID = "notif"
	}
	r.notifications = append(r.notifications, *n)
	return nil
}
