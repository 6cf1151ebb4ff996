package debank

import (
	"context"
	"fmt"
	"net/url"
)

// GetTokenBalances returns all token balances for a wallet across chains.
func (d *debankImpl) GetTokenBalances(ctx context.Context, address string) ([]Token, error) {
	if address == "" {
		return nil, fmt.Errorf("debank: address is required")
	}

	var tokens []Token
	endpoint := fmt.Sprintf("%s?id=%s&is_all=false", PathTokenList, url.QueryEscape(address))
	if err := d.httpClient.Get(ctx, endpoint, &tokens); err != nil {
		return nil, fmt.Errorf("failed to get token balances: %w", err)
	}
	return tokens, nil
}

// GetProtocolPositions returns the wallet's positions across DeFi protocols.
func (d *debankImpl) GetProtocolPositions(ctx context.Context, address string) ([]Protocol, error) {
	if address == "" {
		return nil, fmt.Errorf("debank: address is required")
	}

	var protocols []Protocol
	endpoint := fmt.Sprintf("%s?id=%s", PathProtocolList, url.QueryEscape(address))
	if err := d.httpClient.Get(ctx, endpoint, &protocols); err != nil {
		return nil, fmt.Errorf("failed to get protocol positions: %w", err)
	}
	return protocols, nil
}

// GetTotalBalance returns the per-chain balance summary for a wallet.
func (d *debankImpl) GetTotalBalance(ctx context.Context, address string) (*TotalBalance, error) {
	if address == "" {
		return nil, fmt.Errorf("debank: address is required")
	}

	var balance TotalBalance
	endpoint := fmt.Sprintf("%s?id=%s", PathChainBalance, url.QueryEscape(address))
	if err := d.httpClient.Get(ctx, endpoint, &balance); err != nil {
		return nil, fmt.Errorf("failed to get total balance: %w", err)
	}
	return &balance, nil
}
