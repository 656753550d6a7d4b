package copytrading

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	uc            *DefaultCopyTradingUsecase
	accounts      *fakeAccountRepo
	trades        *fakeTradeRepo
	copies        *fakeCopyRepo
	traders       *fakeTraderRepo
	notifications *fakeNotificationRepo
}

func newFixture(accounts ...*domain.Account) *fixture {
	f := &fixture{
		accounts:      newFakeAccountRepo(accounts...),
		trades:        newFakeTradeRepo(),
		copies:        newFakeCopyRepo(),
		traders:       newFakeTraderRepo(&domain.Trader{ID: "trader-1", Name: "Orion", MinAccountThreshold: d("250"), IsActive: true}),
		notifications: &fakeNotificationRepo{},
	}
	f.uc = NewDefaultCopyTradingUsecase(f.trades, f.copies, f.traders, f.accounts, f.notifications, nil, nil)
	return f
}

func (f *fixture) copy(accountID, investment string) {
	_ = f.copies.CreateRelationship(&domain.CopyRelationship{
		AccountID:        accountID,
		TraderID:         "trader-1",
		InvestmentAmount: d(investment),
		IsActive:         true,
		StartedAt:        time.Now(),
	})
}

func account(id, balance string) *domain.Account {
	return &domain.Account{ID: id, Email: id + "@example.com", Balance: d(balance)}
}

func closedTrade(baseAmount, pct string) TradeInput {
	return TradeInput{
		Market:            "BTC/USD",
		Direction:         "long",
		Duration:          "4h",
		BaseAmount:        d(baseAmount),
		EntryPrice:        d("61000"),
		ExitPrice:         d("63500"),
		ProfitLossPercent: d(pct),
		Status:            domain.TradeClosed,
		OpenedAt:          time.Now(),
	}
}

func TestRecordTraderTradeFansOutSameAmountToEveryCopier(t *testing.T) {
	f := newFixture(account("acc-a", "1000"), account("acc-b", "1000"))
	f.copy("acc-a", "200")
	f.copy("acc-b", "9000")

	outcome, res, err := f.uc.RecordTraderTrade("trader-1", closedTrade("1000", "15.50"))
	require.NoError(t, err)
	require.NotNil(t, res)

	// 1000 * 15.50% regardless of each copier's own investment
	assert.True(t, res.ProfitLoss.Equal(d("155.00")))
	assert.ElementsMatch(t, []string{"acc-a", "acc-b"}, res.Applied)
	assert.Empty(t, res.Failed)
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1155.00")))
	assert.True(t, f.accounts.accounts["acc-b"].Balance.Equal(d("1155.00")))
	assert.True(t, f.accounts.accounts["acc-a"].Profit.Equal(d("155.00")))
	require.NotNil(t, outcome.FannedOutAt)
	assert.Len(t, f.notifications.notifications, 2)
	assert.Equal(t, "Trade Profit", f.notifications.notifications[0].Title)
}

func TestFanoutLossClampsBalanceButNotProfit(t *testing.T) {
	f := newFixture(account("acc-a", "50"))
	f.copy("acc-a", "200")

	_, res, err := f.uc.RecordTraderTrade("trader-1", closedTrade("1000", "-20"))
	require.NoError(t, err)

	assert.True(t, res.ProfitLoss.Equal(d("-200.00")))
	assert.True(t, f.accounts.accounts["acc-a"].Balance.IsZero(), "balance floors at zero")
	assert.True(t, f.accounts.accounts["acc-a"].Profit.Equal(d("-200.00")), "profit tracks the full loss")
	require.Len(t, f.notifications.notifications, 1)
	assert.Equal(t, "Trade Loss", f.notifications.notifications[0].Title)
}

func TestCopierJoiningAfterRecordingIsUnaffected(t *testing.T) {
	f := newFixture(account("acc-a", "1000"), account("acc-late", "1000"))
	f.copy("acc-a", "200")

	_, _, err := f.uc.RecordTraderTrade("trader-1", closedTrade("1000", "10"))
	require.NoError(t, err)

	_, err = f.uc.StartCopying("acc-late", "trader-1", d("500"))
	require.NoError(t, err)

	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1100.00")))
	assert.True(t, f.accounts.accounts["acc-late"].Balance.Equal(d("1000")))
}

func TestOpenTradeIsInertUntilClosed(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))
	f.copy("acc-a", "200")

	in := closedTrade("1000", "0")
	in.Status = domain.TradeOpen
	in.ExitPrice = decimal.Zero

	outcome, res, err := f.uc.RecordTraderTrade("trader-1", in)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Nil(t, outcome.FannedOutAt)
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1000")))

	closed, res, err := f.uc.CloseTradeOutcome(outcome.ID, d("63500"), d("12.5"), time.Now())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.ProfitLoss.Equal(d("125.00")))
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1125.00")))
	require.NotNil(t, closed.FannedOutAt)
}

func TestCloseTradeOutcomeAppliesAtMostOnce(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))
	f.copy("acc-a", "200")

	outcome, _, err := f.uc.RecordTraderTrade("trader-1", closedTrade("1000", "10"))
	require.NoError(t, err)

	_, _, err = f.uc.CloseTradeOutcome(outcome.ID, d("64000"), d("10"), time.Now())
	assert.ErrorIs(t, err, domain.ErrTradeAlreadyApplied)
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1100.00")), "balance moved exactly once")
}

func TestFanoutPartialFailureContinues(t *testing.T) {
	f := newFixture(account("acc-a", "1000"), account("acc-b", "1000"), account("acc-c", "1000"))
	f.copy("acc-a", "200")
	f.copy("acc-b", "200")
	f.copy("acc-c", "200")
	f.accounts.applyErrFor["acc-b"] = domain.ErrAccountNotFound

	outcome, res, err := f.uc.RecordTraderTrade("trader-1", closedTrade("1000", "10"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"acc-a", "acc-c"}, res.Applied)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "acc-b", res.Failed[0].AccountID)
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1100.00")))
	assert.True(t, f.accounts.accounts["acc-b"].Balance.Equal(d("1000")))
	assert.NotNil(t, outcome.FannedOutAt, "a partially failed fan-out still counts as applied")
}

func TestRecordTraderTradeValidation(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))

	_, _, err := f.uc.RecordTraderTrade("trader-missing", closedTrade("1000", "10"))
	assert.ErrorIs(t, err, domain.ErrTraderNotFound)

	_, _, err = f.uc.RecordTraderTrade("trader-1", closedTrade("0", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	in := closedTrade("1000", "10")
	in.Status = "settled"
	_, _, err = f.uc.RecordTraderTrade("trader-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidTradeStatus)
}

func TestRecordDirectTradeUsesInvestmentAsBasis(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))

	outcome, res, err := f.uc.RecordDirectTrade("acc-a", d("5000"), closedTrade("1000", "15.50"))
	require.NoError(t, err)

	// 5000 * 15.50%, not 1000 * 15.50%
	assert.True(t, res.ProfitLoss.Equal(d("775.00")))
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("1775.00")))
	assert.Contains(t, outcome.Reference, "UD-")
	assert.Equal(t, domain.TradeDirect, outcome.Kind)
}

func TestBulkRecordDirectTradeCollectsFailures(t *testing.T) {
	f := newFixture(account("acc-a", "100"), account("acc-b", "100"))

	outcomes, failed, err := f.uc.BulkRecordDirectTrade(
		[]string{"acc-a", "acc-missing", "acc-b"}, d("400"), closedTrade("1000", "25"))
	require.NoError(t, err)

	assert.Len(t, outcomes, 2)
	require.Len(t, failed, 1)
	assert.Equal(t, "acc-missing", failed[0].AccountID)
	assert.True(t, f.accounts.accounts["acc-a"].Balance.Equal(d("200.00")))
	assert.True(t, f.accounts.accounts["acc-b"].Balance.Equal(d("200.00")))
}

func TestStartCopyingLifecycle(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))

	rel, err := f.uc.StartCopying("acc-a", "trader-1", d("500"))
	require.NoError(t, err)
	assert.True(t, rel.IsActive)
	assert.EqualValues(t, 1, f.traders.traders["trader-1"].CopierCount)

	_, err = f.uc.StartCopying("acc-a", "trader-1", d("300"))
	assert.ErrorIs(t, err, domain.ErrAlreadyCopying)

	cancelled, err := f.uc.RequestCancel("acc-a", "trader-1")
	require.NoError(t, err)
	assert.True(t, cancelled.CancelRequested)

	// a pending cancel request does not remove the copier from fan-out
	rels, err := f.copies.ListActiveByTrader("trader-1")
	require.NoError(t, err)
	assert.Len(t, rels, 1)

	stopped, err := f.uc.StopCopying("acc-a", "trader-1")
	require.NoError(t, err)
	assert.False(t, stopped.IsActive)
	assert.EqualValues(t, 0, f.traders.traders["trader-1"].CopierCount)

	_, err = f.uc.StopCopying("acc-a", "trader-1")
	assert.ErrorIs(t, err, domain.ErrCopyNotFound)

	// the pair can start again once the old relationship is inactive
	_, err = f.uc.StartCopying("acc-a", "trader-1", d("250"))
	require.NoError(t, err)
}

func TestStartCopyingSnapshotsTraderThreshold(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))

	rel, err := f.uc.StartCopying("acc-a", "trader-1", d("500"))
	require.NoError(t, err)
	assert.True(t, rel.MinThresholdAtStart.Equal(d("250")))

	// a later change to the trader's minimum leaves the snapshot alone
	f.traders.traders["trader-1"].MinAccountThreshold = d("900")
	stored, err := f.copies.GetActive("acc-a", "trader-1")
	require.NoError(t, err)
	assert.True(t, stored.MinThresholdAtStart.Equal(d("250")))
}

func TestStartCopyingValidation(t *testing.T) {
	f := newFixture(account("acc-a", "1000"))

	_, err := f.uc.StartCopying("acc-a", "trader-1", d("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.uc.StartCopying("acc-missing", "trader-1", d("100"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.uc.StartCopying("acc-a", "trader-missing", d("100"))
	assert.ErrorIs(t, err, domain.ErrTraderNotFound)
}
