package charting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/feedmob-reporting/internal/domain"
)

// RenderChart desenha o bloco completo de uma série: cabeçalho, gráfico de
// linhas ASCII, legenda e tabela de dados com totais. O formato de cada
// linha é contratual — consumidores fazem diff da saída
func RenderChart(series domain.SpendSeries, width, height int) string {
	if len(series.Records) == 0 {
		return "No data to display"
	}

	records := series.Records
	title := fmt.Sprintf("Click URL #%s: %s", series.ClickURLID, series.CampaignName())

	minVal, maxVal := valueRange(records)
	if maxVal == minVal {
		// Evita escala degenerada quando todos os valores coincidem
		maxVal = minVal + 1
	}

	scale := func(v float64) int {
		return int((v - minVal) / (maxVal - minVal) * float64(height-1))
	}

	lines := make([]string, 0, height+len(records)+16)
	lines = append(lines,
		"\n"+strings.Repeat("=", width),
		center(title, width),
		strings.Repeat("=", width),
		"",
	)

	// Plot de cima para baixo: N = net, G = gross, * = ambos na mesma linha
	for row := height - 1; row >= 0; row-- {
		var b strings.Builder

		value := minVal + float64(row)/float64(height-1)*(maxVal-minVal)
		fmt.Fprintf(&b, "$%7.2f |", value)

		for i, record := range records {
			net, _ := record.NetSpend.Float64()
			gross, _ := record.GrossSpend.Float64()

			switch {
			case scale(net) == row && scale(gross) == row:
				b.WriteByte('*')
			case scale(net) == row:
				b.WriteByte('N')
			case scale(gross) == row:
				b.WriteByte('G')
			default:
				b.WriteByte(' ')
			}

			if i < len(records)-1 {
				b.WriteByte(' ')
			}
		}

		lines = append(lines, b.String())
	}

	lines = append(lines, "        +"+strings.Repeat("-", max(0, width-10)))
	lines = append(lines, dateLabels(records, width)...)

	lines = append(lines,
		"",
		"Legend: N = Net Spend, G = Gross Spend, * = Both",
		"",
		"Detailed Data (USD):",
		strings.Repeat("-", width),
		fmt.Sprintf("%-12s %13s %13s", "Date", "Net Spend", "Gross Spend"),
		strings.Repeat("-", width),
	)

	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%-12s $%12s $%12s",
			record.Date,
			record.NetSpend.StringFixed(2),
			record.GrossSpend.StringFixed(2),
		))
	}

	totalNet, totalGross := series.Totals()
	lines = append(lines,
		strings.Repeat("-", width),
		fmt.Sprintf("%-12s $%12s $%12s", "TOTAL", totalNet.StringFixed(2), totalGross.StringFixed(2)),
		strings.Repeat("=", width),
	)

	return strings.Join(lines, "\n")
}

// valueRange retorna o mínimo e o máximo sobre AMBAS as séries (net e gross)
func valueRange(records []domain.SpendRecord) (minVal, maxVal float64) {
	minVal, _ = records[0].NetSpend.Float64()
	maxVal = minVal

	for _, record := range records {
		net, _ := record.NetSpend.Float64()
		gross, _ := record.GrossSpend.Float64()

		for _, v := range [2]float64{net, gross} {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	return minVal, maxVal
}

// dateLabels mostra a primeira e a última data quando há pelo menos três
// pontos; com um ou dois pontos, apenas a primeira
func dateLabels(records []domain.SpendRecord, width int) []string {
	first := records[0].Date
	last := records[len(records)-1].Date

	if len(records) >= 3 {
		gap := max(0, width-len(first)-len(last)-12)
		return []string{"         " + first + strings.Repeat(" ", gap) + last}
	}
	return []string{"         " + first}
}

// center centraliza a string em width colunas com a mesma distribuição de
// espaços do renderizador original
func center(s string, width int) string {
	margin := width - len(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}
