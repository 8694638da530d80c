package core

// CurrencyUAH is the ISO 4217 numeric code of the account's home currency.
// Only debits in this currency count as expenses.
const CurrencyUAH = 980

const (
	Today     Day = "today"
	Yesterday Day = "yesterday"
)

type (
	// Day selects which civil day a statement window covers.
	Day string

	// TimeRange is a [From, To) window in epoch seconds.
	TimeRange struct {
		From int64
		To   int64
	}

	// Transaction is a single statement item as returned by the bank.
	// Amounts are signed minor units; negative means debit.
	Transaction struct {
		ID              string `json:"id"`
		Time            int64  `json:"time"`
		Description     string `json:"description"`
		MCC             int    `json:"mcc"`
		OriginalMCC     int    `json:"originalMcc,omitempty"`
		Amount          int64  `json:"amount"`
		OperationAmount int64  `json:"operationAmount"`
		CurrencyCode    int    `json:"currencyCode"`
		CommissionRate  int64  `json:"commissionRate"`
		CashbackAmount  int64  `json:"cashbackAmount,omitempty"`
		Balance         int64  `json:"balance"`
		Hold            bool   `json:"hold,omitempty"`
	}

	// CategoryInfo is the display form of an MCC bucket.
	CategoryInfo struct {
		Name  string `json:"name"`
		Emoji string `json:"emoji"`
	}

	// CategoryAggregate accumulates the expenses that share a display
	// category. Built fresh per report, discarded after rendering.
	CategoryAggregate struct {
		Category     CategoryInfo
		Total        int64 // absolute minor units
		Count        int
		Transactions []Transaction
	}
)

// IsExpense reports whether the transaction counts toward the daily report:
// a debit in the home currency. Credits and foreign-currency operations are
// excluded entirely.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0 && t.CurrencyCode == CurrencyUAH
}

// Key merges MCC codes that map to the same display category.
func (c CategoryInfo) Key() string {
	return c.Emoji + " " + c.Name
}
