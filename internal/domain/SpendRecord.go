// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SpendRecord representa um registro diário de spend de um click URL,
// conforme retornado pela API de direct spends do FeedMob
type SpendRecord struct {
	ClickURLID   string          `json:"feedmob_click_url_id"`
	Date         string          `json:"date"` // Formato YYYY-MM-DD, ordenável lexicograficamente
	NetSpend     decimal.Decimal `json:"feedmob_net_spend"`
	GrossSpend   decimal.Decimal `json:"feedmob_gross_spend"`
	CampaignName string          `json:"campaign_name"`
}

// TextValue aceita string ou número no JSON e guarda o valor como texto.
// A API do FeedMob alterna entre os dois formatos para identificadores.
type TextValue string

// UnmarshalJSON implementa json.Unmarshaler
func (v *TextValue) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		*v = ""
		return nil
	}

	if strings.HasPrefix(token, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	*v = TextValue(token)
	return nil
}
