package models

import (
	"time"
)

// Market data payloads use the data API's compact single-letter keys.
// Prices stay float64 here: these are high-volume quote/trade feeds, not
// account money amounts.

type Bar struct {
	Timestamp  time.Time `json:"t"`
	Open       float64   `json:"o"`
	High       float64   `json:"h"`
	Low        float64   `json:"l"`
	Close      float64   `json:"c"`
	Volume     uint64    `json:"v"`
	TradeCount uint64    `json:"n"`
	VWAP       float64   `json:"vw"`
}

type Trade struct {
	Timestamp  time.Time `json:"t"`
	Price      float64   `json:"p"`
	Size       uint32    `json:"s"`
	Exchange   string    `json:"x"`
	ID         int64     `json:"i"`
	Conditions []string  `json:"c"`
	Tape       string    `json:"z"`
}

type Quote struct {
	Timestamp   time.Time `json:"t"`
	AskPrice    float64   `json:"ap"`
	AskSize     uint32    `json:"as"`
	AskExchange string    `json:"ax"`
	BidPrice    float64   `json:"bp"`
	BidSize     uint32    `json:"bs"`
	BidExchange string    `json:"bx"`
	Conditions  []string  `json:"c"`
	Tape        string    `json:"z"`
}

type Snapshot struct {
	LatestTrade  *Trade `json:"latestTrade"`
	LatestQuote  *Quote `json:"latestQuote"`
	MinuteBar    *Bar   `json:"minuteBar"`
	DailyBar     *Bar   `json:"dailyBar"`
	PrevDailyBar *Bar   `json:"prevDailyBar"`
}

// Paged response envelopes. NextPageToken is nil on the last page.

type BarsResponse struct {
	Bars          []Bar   `json:"bars"`
	Symbol        string  `json:"symbol"`
	NextPageToken *string `json:"next_page_token"`
}

type MultiBarsResponse struct {
	Bars          map[string][]Bar `json:"bars"`
	NextPageToken *string          `json:"next_page_token"`
}

type TradesResponse struct {
	Trades        []Trade `json:"trades"`
	Symbol        string  `json:"symbol"`
	NextPageToken *string `json:"next_page_token"`
}

type QuotesResponse struct {
	Quotes        []Quote `json:"quotes"`
	Symbol        string  `json:"symbol"`
	NextPageToken *string `json:"next_page_token"`
}

type LatestTradeResponse struct {
	Symbol string `json:"symbol"`
	Trade  Trade  `json:"trade"`
}

type LatestQuoteResponse struct {
	Symbol string `json:"symbol"`
	Quote  Quote  `json:"quote"`
}
