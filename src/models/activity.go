package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is one account activity entry. The API returns two shapes
// on the same endpoint: trade activities (activity_type FILL) populate the
// execution fields, non-trade activities (dividends, fees, transfers, ...)
// populate Date/NetAmount/Description. Fields absent from a given shape are
// pointers left nil.
type AccountActivity struct {
	ID           string `json:"id"`
	ActivityType string `json:"activity_type"`

	// trade activities
	TransactionTime *time.Time       `json:"transaction_time,omitempty"`
	Type            string           `json:"type,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Qty             *decimal.Decimal `json:"qty,omitempty"`
	Side            string           `json:"side,omitempty"`
	Symbol          string           `json:"symbol,omitempty"`
	LeavesQty       *decimal.Decimal `json:"leaves_qty,omitempty"`
	CumQty          *decimal.Decimal `json:"cum_qty,omitempty"`
	OrderID         string           `json:"order_id,omitempty"`

	// non-trade activities
	Date           string           `json:"date,omitempty"`
	NetAmount      *decimal.Decimal `json:"net_amount,omitempty"`
	Description    string           `json:"description,omitempty"`
	PerShareAmount *decimal.Decimal `json:"per_share_amount,omitempty"`
}
