package ledger

import (
	"testing"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDepositBalanceDelta(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus domain.TransactionStatus
		newStatus domain.TransactionStatus
		oldAmount string
		newAmount string
		expected  string
	}{
		{"pending save without change", domain.StatusPending, domain.StatusPending, "100", "100", "0"},
		{"completed save without change is idempotent", domain.StatusCompleted, domain.StatusCompleted, "100", "100", "0"},
		{"pending to completed credits new amount", domain.StatusPending, domain.StatusCompleted, "100", "100", "100"},
		{"completed to failed removes old credit", domain.StatusCompleted, domain.StatusFailed, "100", "100", "-100"},
		{"completed to cancelled removes old credit", domain.StatusCompleted, domain.StatusCancelled, "100", "100", "-100"},
		{"failed to completed credits once", domain.StatusFailed, domain.StatusCompleted, "100", "100", "100"},
		{"completed amount raise applies difference", domain.StatusCompleted, domain.StatusCompleted, "100", "150", "50"},
		{"completed amount cut applies difference", domain.StatusCompleted, domain.StatusCompleted, "150", "100", "-50"},
		{"pending amount edit is inert", domain.StatusPending, domain.StatusPending, "100", "250", "0"},
		{"amount edit while completing credits new amount", domain.StatusPending, domain.StatusCompleted, "100", "250", "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := depositBalanceDelta(tt.oldStatus, tt.newStatus, d(tt.oldAmount), d(tt.newAmount))
			assert.True(t, delta.Equal(d(tt.expected)), "expected %s, got %s", tt.expected, delta)
		})
	}
}

func TestWithdrawalBalanceDelta(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus domain.TransactionStatus
		newStatus domain.TransactionStatus
		oldAmount string
		newAmount string
		expected  string
	}{
		{"pending save without change", domain.StatusPending, domain.StatusPending, "100", "100", "0"},
		{"pending to completed changes nothing", domain.StatusPending, domain.StatusCompleted, "100", "100", "0"},
		{"pending to failed refunds old amount", domain.StatusPending, domain.StatusFailed, "100", "100", "100"},
		{"completed to failed refunds old amount", domain.StatusCompleted, domain.StatusFailed, "100", "100", "100"},
		{"failed to pending deducts new amount", domain.StatusFailed, domain.StatusPending, "100", "100", "-100"},
		{"failed to completed deducts new amount", domain.StatusFailed, domain.StatusCompleted, "100", "100", "-100"},
		{"failed save without change", domain.StatusFailed, domain.StatusFailed, "100", "100", "0"},
		{"completed amount raise deducts difference", domain.StatusCompleted, domain.StatusCompleted, "100", "150", "-50"},
		{"completed amount cut refunds difference", domain.StatusCompleted, domain.StatusCompleted, "150", "100", "50"},
		{"pending amount edit is inert", domain.StatusPending, domain.StatusPending, "100", "250", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := withdrawalBalanceDelta(tt.oldStatus, tt.newStatus, d(tt.oldAmount), d(tt.newAmount))
			assert.True(t, delta.Equal(d(tt.expected)), "expected %s, got %s", tt.expected, delta)
		})
	}
}

// A full pending -> completed -> failed -> completed edit sequence must net
// out to a single completed deposit.
func TestDepositStatusTransitionsCompose(t *testing.T) {
	balance := d("40")
	amount := d("100")

	steps := []struct {
		from, to domain.TransactionStatus
	}{
		{domain.StatusPending, domain.StatusCompleted},
		{domain.StatusCompleted, domain.StatusFailed},
		{domain.StatusFailed, domain.StatusCompleted},
	}
	for _, step := range steps {
		balance = balance.Add(depositBalanceDelta(step.from, step.to, amount, amount))
	}

	assert.True(t, balance.Equal(d("140")), "expected 140, got %s", balance)
}
