package copytrading

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeAccountRepo struct {
	accounts    map[string]*domain.Account
	applyErrFor map[string]error
}

func newFakeAccountRepo(accounts ...*domain.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*domain.Account), applyErrFor: make(map[string]error)}
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

func (r *fakeAccountRepo) GetAccountsByIDs(ids []string) ([]*domain.Account, error) { return nil, nil }

func (r *fakeAccountRepo) UpdateTierFields(accountID string, current, next domain.TierKey, nextAmount decimal.Decimal) error {
	return nil
}

func (r *fakeAccountRepo) CreditEarnings(accountID string, amount decimal.Decimal, destination domain.EarningsDestination) error {
	return nil
}

func (r *fakeAccountRepo) ApplyTradeResult(accountID string, pl decimal.Decimal) (*domain.TradeApplication, error) {
	if err := r.applyErrFor[accountID]; err != nil {
		return nil, err
	}
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

type fakeTradeRepo struct {
	outcomes map[string]*domain.TradeOutcome
	seq      int
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{outcomes: make(map[string]*domain.TradeOutcome)}
}

func (r *fakeTradeRepo) CreateTradeOutcome(outcome *domain.TradeOutcome) error {
	if outcome.ID == "" {
		r.seq++
		outcome.ID = fmt.Sprintf("trade-%d", r.seq)
	}
	cp := *outcome
	r.outcomes[outcome.ID] = &cp
	return nil
}

func (r *fakeTradeRepo) GetTradeOutcomeByID(outcomeID string) (*domain.TradeOutcome, error) {
	outcome, ok := r.outcomes[outcomeID]
	if !ok {
		return nil, domain.ErrTradeOutcomeNotFound
	}
	cp := *outcome
	return &cp, nil
}

func (r *fakeTradeRepo) CloseTradeOutcome(outcomeID string, exitPrice, profitLossPercent decimal.Decimal, closedAt time.Time) error {
	outcome, ok := r.outcomes[outcomeID]
	if !ok {
		return domain.ErrTradeOutcomeNotFound
	}
	outcome.Status = domain.TradeClosed
	outcome.ExitPrice = exitPrice
	outcome.ProfitLossPercent = profitLossPercent
	outcome.ClosedAt = &closedAt
	return nil
}

func (r *fakeTradeRepo) MarkFannedOut(outcomeID string, at time.Time) error {
	outcome, ok := r.outcomes[outcomeID]
	if !ok {
		return domain.ErrTradeOutcomeNotFound
	}
	outcome.FannedOutAt = &at
	return nil
}

type fakeCopyRepo struct {
	rels map[string]*domain.CopyRelationship
	seq  int
}

func newFakeCopyRepo() *fakeCopyRepo {
	return &fakeCopyRepo{rels: make(map[string]*domain.CopyRelationship)}
}

func (r *fakeCopyRepo) ListActiveByTrader(traderID string) ([]*domain.CopyRelationship, error) {
	var out []*domain.CopyRelationship
	for _, rel := range r.rels {
		if rel.TraderID == traderID && rel.IsActive {
			cp := *rel
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCopyRepo) GetActive(accountID, traderID string) (*domain.CopyRelationship, error) {
	for _, rel := range r.rels {
		if rel.AccountID == accountID && rel.TraderID == traderID && rel.IsActive {
			cp := *rel
			return &cp, nil
		}
	}
	return nil, domain.ErrCopyNotFound
}

func (r *fakeCopyRepo) CreateRelationship(rel *domain.CopyRelationship) error {
	if rel.ID == "" {
		r.seq++
		rel.ID = fmt.Sprintf("rel-%d", r.seq)
	}
	cp := *rel
	r.rels[rel.ID] = &cp
	return nil
}

func (r *fakeCopyRepo) ListZeroInvestment() ([]*domain.CopyRelationship, error) {
	var out []*domain.CopyRelationship
	for _, rel := range r.rels {
		if rel.InvestmentAmount.IsZero() {
			cp := *rel
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCopyRepo) SetInvestmentAmount(relID string, amount decimal.Decimal) error {
	rel, ok := r.rels[relID]
	if !ok {
		return domain.ErrCopyNotFound
	}
	rel.InvestmentAmount = amount
	return nil
}

func (r *fakeCopyRepo) RequestCancel(relID string, at time.Time) error {
	rel, ok := r.rels[relID]
	if !ok {
		return domain.ErrCopyNotFound
	}
	rel.CancelRequested = true
	rel.CancelRequestedAt = &at
	return nil
}

func (r *fakeCopyRepo) Deactivate(relID string, at time.Time) error {
	rel, ok := r.rels[relID]
	if !ok {
		return domain.ErrCopyNotFound
	}
	rel.IsActive = false
	rel.StoppedAt = &at
	return nil
}

type fakeTraderRepo struct {
	traders map[string]*domain.Trader
}

func newFakeTraderRepo(traders ...*domain.Trader) *fakeTraderRepo {
	r := &fakeTraderRepo{traders: make(map[string]*domain.Trader)}
	for _, tr := range traders {
		r.traders[tr.ID] = tr
	}
	return r
}

func (r *fakeTraderRepo) GetTraderByID(traderID string) (*domain.Trader, error) {
	tr, ok := r.traders[traderID]
	if !ok {
		return nil, domain.ErrTraderNotFound
	}
	cp := *tr
	return &cp, nil
}

func (r *fakeTraderRepo) AdjustCopierCount(traderID string, delta int) error {
	tr, ok := r.traders[traderID]
	if !ok {
		return domain.ErrTraderNotFound
	}
	tr.CopierCount += int64(delta)
	return nil
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
