package http

import (
	"time"

	"portfolio-srv/internal/model"
	"portfolio-srv/internal/portfolio"
)

type getSnapshotReq struct {
	BundleID     string
	ForceRefresh bool
}

func (r getSnapshotReq) toInput() portfolio.GetSnapshotInput {
	return portfolio.GetSnapshotInput{
		BundleID:     r.BundleID,
		ForceRefresh: r.ForceRefresh,
	}
}

type bundleReq struct {
	BundleID string
}

func (r bundleReq) toExportInput() portfolio.ExportInput {
	return portfolio.ExportInput{
		BundleID: r.BundleID,
	}
}

type getHistoryReq struct {
	BundleID string
	Days     int
}

func (r getHistoryReq) toInput() portfolio.GetHistoryInput {
	return portfolio.GetHistoryInput{
		BundleID: r.BundleID,
		Days:     r.Days,
	}
}

type tokenResp struct {
	Address  string  `json:"address"`
	Chain    string  `json:"chain"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	PriceUSD float64 `json:"price_usd"`
	ValueUSD float64 `json:"value_usd"`
}

type positionResp struct {
	Address  string  `json:"address"`
	Chain    string  `json:"chain"`
	Protocol string  `json:"protocol"`
	Category string  `json:"category"`
	ValueUSD float64 `json:"value_usd"`
}

type chainResp struct {
	Chain    string  `json:"chain"`
	ValueUSD float64 `json:"value_usd"`
}

type snapshotResp struct {
	ID               string         `json:"id"`
	BundleID         string         `json:"bundle_id"`
	TotalValueUSD    float64        `json:"total_value_usd"`
	TokenValueUSD    float64        `json:"token_value_usd"`
	ProtocolValueUSD float64        `json:"protocol_value_usd"`
	Chains           []chainResp    `json:"chains"`
	Tokens           []tokenResp    `json:"tokens"`
	Positions        []positionResp `json:"positions"`
	TakenAt          string         `json:"taken_at"`
}

type valuePointResp struct {
	Time     string  `json:"time"`
	ValueUSD float64 `json:"value_usd"`
}

type historyResp struct {
	Points []valuePointResp `json:"points"`
}

type exportResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

func (h *handler) newSnapshotResp(s *model.PortfolioSnapshot) snapshotResp {
	resp := snapshotResp{
		ID:               s.ID,
		BundleID:         s.BundleID,
		TotalValueUSD:    s.TotalValueUSD,
		TokenValueUSD:    s.TokenValueUSD,
		ProtocolValueUSD: s.ProtocolValueUSD,
		Chains:           make([]chainResp, 0, len(s.Chains)),
		Tokens:           make([]tokenResp, 0, len(s.Tokens)),
		Positions:        make([]positionResp, 0, len(s.Positions)),
		TakenAt:          s.TakenAt.Format(time.RFC3339),
	}
	for _, c := range s.Chains {
		resp.Chains = append(resp.Chains, chainResp{Chain: c.Chain, ValueUSD: c.ValueUSD})
	}
	for _, t := range s.Tokens {
		resp.Tokens = append(resp.Tokens, tokenResp{
			Address:  t.Address,
			Chain:    t.Chain,
			Symbol:   t.Symbol,
			Name:     t.Name,
			Amount:   t.Amount,
			PriceUSD: t.PriceUSD,
			ValueUSD: t.ValueUSD,
		})
	}
	for _, p := range s.Positions {
		resp.Positions = append(resp.Positions, positionResp{
			Address:  p.Address,
			Chain:    p.Chain,
			Protocol: p.Protocol,
			Category: p.Category,
			ValueUSD: p.ValueUSD,
		})
	}
	return resp
}

func (h *handler) newHistoryResp(points []model.ValuePoint) historyResp {
	resp := historyResp{Points: make([]valuePointResp, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, valuePointResp{
			Time:     p.Time.Format(time.RFC3339),
			ValueUSD: p.ValueUSD,
		})
	}
	return resp
}

func (h *handler) newExportResp(o portfolio.ExportOutput) exportResp {
	return exportResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt,
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
