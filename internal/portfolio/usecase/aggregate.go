package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio"
)

// maxConcurrentAddresses bounds the aggregator fan-out per bundle. The
// upstream aggregator rate-limits per access key.
const maxConcurrentAddresses = 5

// addressResult holds one wallet's aggregated data.
type addressResult struct {
	tokens    []model.TokenHolding
	positions []model.ProtocolPosition
}

// aggregateAndStore aggregates every address in the bundle, stores the
// snapshot and refreshes the cache.
func (uc *implUseCase) aggregateAndStore(ctx context.Context, b *model.Bundle) (*model.PortfolioSnapshot, error) {
	if len(b.Addresses) == 0 {
		return nil, portfolio.ErrEmptyBundle
	}

	results := make([]addressResult, len(b.Addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAddresses)
	for i, address := range b.Addresses {
		g.Go(func() error {
			res, err := uc.aggregateAddress(gctx, address)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "portfolio.usecase.aggregateAndStore: Aggregation failed for bundle %s: %v", b.ID, err)
		return nil, portfolio.ErrAggregateFailed
	}

	snapshot := buildSnapshot(b.ID, results)

	if err := uc.repo.CreateSnapshot(ctx, snapshot); err != nil {
		// The aggregated data is still good; serve it and log the miss.
		uc.l.Errorf(ctx, "portfolio.usecase.aggregateAndStore: Failed to store snapshot: %v", err)
	}
	if err := uc.cache.SetSnapshot(ctx, snapshot, portfolio.SnapshotCacheTTL); err != nil {
		uc.l.Warnf(ctx, "portfolio.usecase.aggregateAndStore: Failed to cache snapshot: %v", err)
	}

	return snapshot, nil
}

// aggregateAddress fetches token balances and protocol positions for one
// wallet. The two upstream calls run concurrently.
func (uc *implUseCase) aggregateAddress(ctx context.Context, address string) (addressResult, error) {
	var result addressResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tokens, err := uc.debank.GetTokenBalances(gctx, address)
		if err != nil {
			return err
		}
		holdings := make([]model.TokenHolding, 0, len(tokens))
		for _, t := range tokens {
			if !t.IsWallet {
				continue
			}
			holdings = append(holdings, model.TokenHolding{
				Address:  address,
				Chain:    t.Chain,
				Symbol:   t.Symbol,
				Name:     t.Name,
				Amount:   t.Amount,
				PriceUSD: t.Price,
				ValueUSD: t.ValueUSD(),
			})
		}
		result.tokens = holdings
		return nil
	})

	g.Go(func() error {
		protocols, err := uc.debank.GetProtocolPositions(gctx, address)
		if err != nil {
			return err
		}
		positions := make([]model.ProtocolPosition, 0, len(protocols))
		for _, p := range protocols {
			positions = append(positions, model.ProtocolPosition{
				Address:  address,
				Chain:    p.Chain,
				Protocol: p.Name,
				Category: p.Category,
				ValueUSD: p.NetValueUSD(),
			})
		}
		result.positions = positions
		return nil
	})

	if err := g.Wait(); err != nil {
		return addressResult{}, err
	}
	return result, nil
}

// buildSnapshot merges the per-address results into one snapshot.
func buildSnapshot(bundleID string, results []addressResult) *model.PortfolioSnapshot {
	snapshot := &model.PortfolioSnapshot{
		ID:       uuid.New().String(),
		BundleID: bundleID,
		TakenAt:  time.Now(),
	}

	chainTotals := make(map[string]float64)
	for _, res := range results {
		for _, t := range res.tokens {
			snapshot.Tokens = append(snapshot.Tokens, t)
			snapshot.TokenValueUSD += t.ValueUSD
			chainTotals[t.Chain] += t.ValueUSD
		}
		for _, p := range res.positions {
			snapshot.Positions = append(snapshot.Positions, p)
			snapshot.ProtocolValueUSD += p.ValueUSD
			chainTotals[p.Chain] += p.ValueUSD
		}
	}
	snapshot.TotalValueUSD = snapshot.TokenValueUSD + snapshot.ProtocolValueUSD

	snapshot.Chains = make([]model.ChainValue, 0, len(chainTotals))
	for chain, value := range chainTotals {
		snapshot.Chains = append(snapshot.Chains, model.ChainValue{Chain: chain, ValueUSD: value})
	}
	sort.Slice(snapshot.Chains, func(i, j int) bool {
		return snapshot.Chains[i].ValueUSD > snapshot.Chains[j].ValueUSD
	})

	// Largest holdings first makes the dashboard's top-N view cheap.
	sort.Slice(snapshot.Tokens, func(i, j int) bool {
		return snapshot.Tokens[i].ValueUSD > snapshot.Tokens[j].ValueUSD
	})
	sort.Slice(snapshot.Positions, func(i, j int) bool {
		return snapshot.Positions[i].ValueUSD > snapshot.Positions[j].ValueUSD
	})

	return snapshot
}
