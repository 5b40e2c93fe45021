package charting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/feedmob-reporting/internal/config"
	"github.com/vfg2006/feedmob-reporting/pkg/log"
)

// Mensagens literais da saída do renderizador. Erros do renderizador são
// strings inline no relatório, não códigos de saída
const (
	noDataMessage       = "No direct spend data found for the specified parameters."
	invalidJSONTemplate = "Error: Invalid JSON data - %v"
	dataErrorTemplate   = "Error: %v"
)

// Charting transforma o JSON de direct spends em um relatório de texto
type Charting interface {
	RenderReport(input []byte) string
}

// Service implementa Charting com a geometria de gráfico da configuração
type Service struct {
	cfg    *config.Config
	logger log.Logger
}

// NewService cria o serviço de renderização de gráficos
func NewService(cfg *config.Config) Charting {
	return &Service{
		cfg:    cfg,
		logger: log.ForRun(),
	}
}

// RenderReport converte o JSON de entrada no relatório completo: um bloco de
// gráfico por click URL, na ordem de primeira aparição, separados por linha
// em branco. Erros de dados substituem toda a saída — nunca há emissão parcial
func (s *Service) RenderReport(input []byte) string {
	records, err := ParseRecords(input)
	if err != nil {
		if missing, ok := err.(*MissingFieldError); ok {
			s.logger.WithError(missing).Warn("Registro de spend incompleto")
			return fmt.Sprintf(dataErrorTemplate, missing)
		}
		s.logger.WithError(err).Warn("JSON de entrada inválido")
		return fmt.Sprintf(invalidJSONTemplate, err)
	}

	if len(records) == 0 {
		return noDataMessage
	}

	series := GroupByClickURL(records)
	s.logger.WithFields(log.Fields{
		"records": len(records),
		"series":  len(series),
	}).Debug("Registros de spend agrupados")

	blocks := make([]string, 0, len(series))
	for _, sr := range series {
		blocks = append(blocks, RenderChart(sr, s.cfg.Chart.Width, s.cfg.Chart.Height))
	}

	return strings.Join(blocks, "\n\n")
}
