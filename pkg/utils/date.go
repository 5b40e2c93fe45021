package utils

import "time"

// ValidDate informa se a string está no formato de data do feed (YYYY-MM-DD).
// A ordenação dos gráficos é lexicográfica, então datas fora do padrão não
// interrompem o processamento — apenas geram aviso.
func ValidDate(dateStr string) bool {
	_, err := time.Parse(time.DateOnly, dateStr)
	return err == nil
}
