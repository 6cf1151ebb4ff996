package debank

import (
	"time"

	"portfolio-srv/pkg/httpclient"
)

// DebankConfig holds configuration for the DeFi aggregator client.
type DebankConfig struct {
	BaseURL    string
	AccessKey  string
	Timeout    time.Duration // zero means DefaultTimeout
	HTTPClient httpclient.IClient
	Metrics    *httpclient.Metrics
}

// Token is one token balance as reported by the aggregator.
type Token struct {
	ID       string  `json:"id"`
	Chain    string  `json:"chain"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Price    float64 `json:"price"`
	IsWallet bool    `json:"is_wallet"`
}

// ValueUSD returns the position value in USD.
func (t Token) ValueUSD() float64 {
	return t.Amount * t.Price
}

// PortfolioItem is one position inside a protocol.
type PortfolioItem struct {
	Name string `json:"name"`
	Stats struct {
		NetUSDValue float64 `json:"net_usd_value"`
	} `json:"stats"`
}

// Protocol is one DeFi protocol with the user's positions in it.
type Protocol struct {
	ID            string          `json:"id"`
	Chain         string          `json:"chain"`
	Name          string          `json:"name"`
	Category      string          `json:"tag"`
	PortfolioList []PortfolioItem `json:"portfolio_item_list"`
}

// NetValueUSD sums the protocol's position values.
func (p Protocol) NetValueUSD() float64 {
	var total float64
	for _, item := range p.PortfolioList {
		total += item.Stats.NetUSDValue
	}
	return total
}

// ChainBalance is the total balance on one chain.
type ChainBalance struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	USDValue float64 `json:"usd_value"`
}

// TotalBalance is the aggregator's per-chain balance summary.
type TotalBalance struct {
	TotalUSDValue float64        `json:"total_usd_value"`
	ChainList     []ChainBalance `json:"chain_list"`
}

// debankImpl implements IDebank.
type debankImpl struct {
	httpClient httpclient.IClient
}
