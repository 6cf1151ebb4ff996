package model

import "time"

// TokenHolding is one token position on one chain for one wallet.
type TokenHolding struct {
	Address  string
	Chain    string
	Symbol   string
	Name     string
	Amount   float64
	PriceUSD float64
	ValueUSD float64
}

// ProtocolPosition is value deposited in one DeFi protocol.
type ProtocolPosition struct {
	Address  string
	Chain    string
	Protocol string
	Category string
	ValueUSD float64
}

// ChainValue is the aggregated value on one chain.
type ChainValue struct {
	Chain    string
	ValueUSD float64
}

// PortfolioSnapshot is the aggregated value of a bundle at one point in time.
type PortfolioSnapshot struct {
	ID               string
	BundleID         string
	TotalValueUSD    float64
	TokenValueUSD    float64
	ProtocolValueUSD float64
	Chains           []ChainValue
	Tokens           []TokenHolding
	Positions        []ProtocolPosition
	TakenAt          time.Time
}

// ValuePoint is one sample of a bundle's value history.
type ValuePoint struct {
	Time     time.Time
	ValueUSD float64
}
