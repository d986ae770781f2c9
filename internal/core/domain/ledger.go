package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerSide is one side of a double-entry posting.
type LedgerSide string

const (
	LedgerSideDebit  LedgerSide = "DEBIT"
	LedgerSideCredit LedgerSide = "CREDIT"
)

// Well-known account codes seeded for every new tenant.
const (
	AccountCodeCash          = "CASH"
	AccountCodeRevenue       = "REVENUE"
	AccountCodeRefundExpense = "REFUND_EXPENSE"
)

// AccountType classifies an account for reporting purposes.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// AccountConfig maps a per-tenant account code to its label and type.
type AccountConfig struct {
	TenantID    uuid.UUID   `json:"tenant_id"`
	Code        string      `json:"code"`
	Label       string      `json:"label"`
	AccountType AccountType `json:"account_type"`
}

// DefaultAccountConfigs returns the accounts seeded for every new tenant.
func DefaultAccountConfigs(tenantID uuid.UUID) []AccountConfig {
	return []AccountConfig{
		{TenantID: tenantID, Code: AccountCodeCash, Label: "Cash", AccountType: AccountTypeAsset},
		{TenantID: tenantID, Code: AccountCodeRevenue, Label: "Revenue", AccountType: AccountTypeRevenue},
		{TenantID: tenantID, Code: AccountCodeRefundExpense, Label: "Refund Expense", AccountType: AccountTypeExpense},
	}
}

// LedgerLine is one debit or credit leg of a LedgerEntry.
type LedgerLine struct {
	ID       uuid.UUID       `json:"id"`
	TenantID uuid.UUID       `json:"tenant_id"`
	EntryID  uuid.UUID       `json:"entry_id"`
	Side     LedgerSide      `json:"side"`
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// LedgerEntry owns its lines; deleting an entry cascades to its lines.
type LedgerEntry struct {
	ID              uuid.UUID    `json:"id"`
	TenantID        uuid.UUID    `json:"tenant_id"`
	PaymentIntentID uuid.UUID    `json:"payment_intent_id"`
	PostedAt        time.Time    `json:"posted_at"`
	Lines           []LedgerLine `json:"lines"`
}

// NewBalancedEntry builds a two-line entry debiting debitAccount and
// crediting creditAccount for the same amount, in the same currency. Every
// ledger posting in the system is built through this constructor so the
// double-entry invariant can never be expressed by hand.
func NewBalancedEntry(id, tenantID, paymentIntentID uuid.UUID, postedAt time.Time, debitAccount, creditAccount string, amount decimal.Decimal, currency Currency) LedgerEntry {
	return LedgerEntry{
		ID:              id,
		TenantID:        tenantID,
		PaymentIntentID: paymentIntentID,
		PostedAt:        postedAt,
		Lines: []LedgerLine{
			{ID: uuid.New(), TenantID: tenantID, EntryID: id, Side: LedgerSideDebit, Account: debitAccount, Amount: amount, Currency: currency},
			{ID: uuid.New(), TenantID: tenantID, EntryID: id, Side: LedgerSideCredit, Account: creditAccount, Amount: amount, Currency: currency},
		},
	}
}

// IsBalanced reports whether debit and credit lines sum equal per currency,
// the fundamental double-entry invariant.
func (e LedgerEntry) IsBalanced() bool {
	debits := map[Currency]decimal.Decimal{}
	credits := map[Currency]decimal.Decimal{}
	for _, l := range e.Lines {
		switch l.Side {
		case LedgerSideDebit:
			debits[l.Currency] = debits[l.Currency].Add(l.Amount)
		case LedgerSideCredit:
			credits[l.Currency] = credits[l.Currency].Add(l.Amount)
		}
	}
	if len(debits) != len(credits) {
		return false
	}
	for cur, d := range debits {
		c, ok := credits[cur]
		if !ok || !d.Equal(c) {
			return false
		}
	}
	return true
}
