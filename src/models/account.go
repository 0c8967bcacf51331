// Package models contains the typed payloads exchanged with the trading and
// market data APIs. Monetary amounts are decimals because the API transmits
// them as strings; optional wire fields are pointers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID                    string          `json:"id"`
	AccountNumber         string          `json:"account_number"`
	Status                string          `json:"status"`
	Currency              string          `json:"currency"`
	Cash                  decimal.Decimal `json:"cash"`
	PortfolioValue        decimal.Decimal `json:"portfolio_value"`
	BuyingPower           decimal.Decimal `json:"buying_power"`
	RegTBuyingPower       decimal.Decimal `json:"regt_buying_power"`
	DaytradingBuyingPower decimal.Decimal `json:"daytrading_buying_power"`
	Equity                decimal.Decimal `json:"equity"`
	LastEquity            decimal.Decimal `json:"last_equity"`
	LongMarketValue       decimal.Decimal `json:"long_market_value"`
	ShortMarketValue      decimal.Decimal `json:"short_market_value"`
	InitialMargin         decimal.Decimal `json:"initial_margin"`
	MaintenanceMargin     decimal.Decimal `json:"maintenance_margin"`
	Multiplier            decimal.Decimal `json:"multiplier"`
	DaytradeCount         int64           `json:"daytrade_count"`
	PatternDayTrader      bool            `json:"pattern_day_trader"`
	TradingBlocked        bool            `json:"trading_blocked"`
	TransfersBlocked      bool            `json:"transfers_blocked"`
	AccountBlocked        bool            `json:"account_blocked"`
	ShortingEnabled       bool            `json:"shorting_enabled"`
	TradeSuspendedByUser  bool            `json:"trade_suspended_by_user"`
	CreatedAt             time.Time       `json:"created_at"`
}

// AccountConfigurations are the account-wide trading settings, fetched and
// updated via the account configuration endpoint.
type AccountConfigurations struct {
	DtbpCheck           string `json:"dtbp_check"`
	TradeConfirmEmail   string `json:"trade_confirm_email"`
	SuspendTrade        bool   `json:"suspend_trade"`
	NoShorting          bool   `json:"no_shorting"`
	FractionalTrading   bool   `json:"fractional_trading"`
	MaxMarginMultiplier string `json:"max_margin_multiplier,omitempty"`
	PdtCheck            string `json:"pdt_check,omitempty"`
}

// UpdateAccountConfigurationsRequest carries a partial update; nil fields
// are omitted from the wire so existing settings are left untouched.
type UpdateAccountConfigurationsRequest struct {
	DtbpCheck         *string `json:"dtbp_check,omitempty"`
	TradeConfirmEmail *string `json:"trade_confirm_email,omitempty"`
	SuspendTrade      *bool   `json:"suspend_trade,omitempty"`
	NoShorting        *bool   `json:"no_shorting,omitempty"`
	FractionalTrading *bool   `json:"fractional_trading,omitempty"`
}
