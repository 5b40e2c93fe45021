package domain

import "github.com/shopspring/decimal"

// SpendSeries agrupa os registros de spend de um único click URL,
// ordenados por data ascendente. Registros com a mesma data preservam a
// ordem de entrada (sem deduplicação).
type SpendSeries struct {
	ClickURLID string
	Records    []SpendRecord
}

// CampaignName retorna o nome da campanha do primeiro registro da série
func (s SpendSeries) CampaignName() string {
	if len(s.Records) == 0 {
		return "Unknown"
	}
	return s.Records[0].CampaignName
}

// Totals soma os valores net e gross da série com precisão decimal exata
func (s SpendSeries) Totals() (net, gross decimal.Decimal) {
	for _, r := range s.Records {
		net = net.Add(r.NetSpend)
		gross = gross.Add(r.GrossSpend)
	}
	return net, gross
}
