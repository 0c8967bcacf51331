package models

import (
	"github.com/shopspring/decimal"
)

// PortfolioHistory is a column-oriented time series: the i-th element of
// each slice belongs to Timestamp[i] (unix seconds).
type PortfolioHistory struct {
	Timestamp     []int64           `json:"timestamp"`
	Equity        []decimal.Decimal `json:"equity"`
	ProfitLoss    []decimal.Decimal `json:"profit_loss"`
	ProfitLossPct []decimal.Decimal `json:"profit_loss_pct"`
	BaseValue     decimal.Decimal   `json:"base_value"`
	Timeframe     string            `json:"timeframe"`
}
