package charting

import (
	"bytes"
	"encoding/json"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/feedmob-reporting/internal/domain"
	"github.com/vfg2006/feedmob-reporting/pkg/log"
	"github.com/vfg2006/feedmob-reporting/pkg/utils"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Campos obrigatórios de cada registro da API de direct spends
const (
	fieldClickURLID = "feedmob_click_url_id"
	fieldDate       = "date"
	fieldNetSpend   = "feedmob_net_spend"
	fieldGrossSpend = "feedmob_gross_spend"
)

// wireRecord espelha o formato de fio da API. Ponteiros distinguem campo
// ausente (ou null) de valor zero
type wireRecord struct {
	ClickURLID   *domain.TextValue `json:"feedmob_click_url_id"`
	Date         *string           `json:"date"`
	NetSpend     *decimal.Decimal  `json:"feedmob_net_spend"`
	GrossSpend   *decimal.Decimal  `json:"feedmob_gross_spend"`
	CampaignName string            `json:"campaign_name"`
}

// envelope é o formato alternativo de entrada: um objeto com a chave "data"
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// ParseRecords aceita um array JSON de registros ou um objeto com a chave
// "data" contendo o array. Retorna MissingFieldError quando um registro não
// traz um campo obrigatório; qualquer outro erro é de decodificação JSON
func ParseRecords(input []byte) ([]domain.SpendRecord, error) {
	payload := bytes.TrimSpace(input)

	if bytes.HasPrefix(payload, []byte("{")) {
		var env envelope
		if err := jsonAPI.Unmarshal(payload, &env); err != nil {
			return nil, err
		}
		payload = bytes.TrimSpace(env.Data)
	}

	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil, nil
	}

	var wire []wireRecord
	if err := jsonAPI.Unmarshal(payload, &wire); err != nil {
		return nil, err
	}

	records := make([]domain.SpendRecord, 0, len(wire))
	for _, w := range wire {
		record, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (w wireRecord) toDomain() (domain.SpendRecord, error) {
	switch {
	case w.ClickURLID == nil:
		return domain.SpendRecord{}, &MissingFieldError{Key: fieldClickURLID}
	case w.Date == nil:
		return domain.SpendRecord{}, &MissingFieldError{Key: fieldDate}
	case w.NetSpend == nil:
		return domain.SpendRecord{}, &MissingFieldError{Key: fieldNetSpend}
	case w.GrossSpend == nil:
		return domain.SpendRecord{}, &MissingFieldError{Key: fieldGrossSpend}
	}

	if !utils.ValidDate(*w.Date) {
		log.L.Warnf("Data fora do formato YYYY-MM-DD: %q (a ordenação é lexicográfica)", *w.Date)
	}

	campaign := w.CampaignName
	if campaign == "" {
		campaign = "Unknown"
	}

	return domain.SpendRecord{
		ClickURLID:   string(*w.ClickURLID),
		Date:         *w.Date,
		NetSpend:     *w.NetSpend,
		GrossSpend:   *w.GrossSpend,
		CampaignName: campaign,
	}, nil
}

// GroupByClickURL particiona os registros por click URL, preservando a ordem
// de primeira aparição dos grupos, e ordena cada grupo por data ascendente
// com ordenação estável (entradas de mesma data mantêm a ordem de entrada)
func GroupByClickURL(records []domain.SpendRecord) []domain.SpendSeries {
	index := make(map[string]int)
	series := make([]domain.SpendSeries, 0)

	for _, record := range records {
		i, seen := index[record.ClickURLID]
		if !seen {
			i = len(series)
			index[record.ClickURLID] = i
			series = append(series, domain.SpendSeries{ClickURLID: record.ClickURLID})
		}
		series[i].Records = append(series[i].Records, record)
	}

	for i := range series {
		records := series[i].Records
		// SliceStable para não reordenar entradas de mesma data
		sort.SliceStable(records, func(a, b int) bool {
			return records[a].Date < records[b].Date
		})
	}

	return series
}
