package assembling

import (
	"regexp"
	"strings"

	"github.com/vfg2006/feedmob-reporting/infrastructure/pptx"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
)

// Regra "6x6": no máximo 6 linhas de conteúdo por lista, cada uma com no
// máximo 6 palavras (com marcador de reticências quando cortada)
const (
	maxBulletLines = 6
	maxBulletWords = 6
	ellipsisMark   = "..."
)

// Verbos de ação que elevam uma linha à ênfase média
var actionVerbs = []string{
	"launch", "increase", "reduce", "deliver", "achieve",
	"grow", "optimize", "drive", "improve", "expand",
}

// Qualquer linha com dígito (número, moeda, percentual) também recebe
// ênfase média
var metricPattern = regexp.MustCompile(`\d`)

// applySixBySix aplica a regra 6x6 a uma lista de bullets
func applySixBySix(lines []string) []string {
	if len(lines) > maxBulletLines {
		lines = lines[:maxBulletLines]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, truncateWords(line))
	}
	return out
}

func truncateWords(line string) string {
	words := strings.Fields(line)
	if len(words) <= maxBulletWords {
		return line
	}
	return strings.Join(words[:maxBulletWords], " ") + ellipsisMark
}

// classifyBullet decide a hierarquia de conteúdo de uma linha: a primeira
// recebe ênfase alta; linhas com verbo de ação ou valor numérico, média;
// as demais, normal
func classifyBullet(index int, line string) domain.Emphasis {
	if index == 0 {
		return domain.EmphasisHigh
	}

	lower := strings.ToLower(line)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return domain.EmphasisMedium
		}
	}

	if metricPattern.MatchString(line) {
		return domain.EmphasisMedium
	}
	return domain.EmphasisNormal
}

// addBullets escreve a lista na caixa de texto com a regra 6x6 e a
// hierarquia de conteúdo aplicadas
func addBullets(box *pptx.TextBox, lines []string, scheme domain.ColorScheme) {
	for i, line := range applySixBySix(lines) {
		emphasis := classifyBullet(i, line)
		style := emphasis.Style()

		box.AddParagraph().
			AddRun("• " + line).
			SetSize(style.SizePt).
			SetBold(style.Bold).
			SetColor(emphasis.Color(scheme))
	}
}
