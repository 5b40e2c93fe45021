package domain

// Emphasis é o nível de hierarquia visual de uma linha de conteúdo
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisMedium
	EmphasisHigh
)

// TextStyle é a regra tipográfica fixa de um nível de ênfase. A cor vem do
// esquema do deck: High usa a primária, Medium a secundária, Normal a de texto
type TextStyle struct {
	SizePt int
	Bold   bool
}

var emphasisStyles = map[Emphasis]TextStyle{
	EmphasisHigh:   {SizePt: 20, Bold: true},
	EmphasisMedium: {SizePt: 18, Bold: true},
	EmphasisNormal: {SizePt: 16, Bold: false},
}

// Style retorna a regra tipográfica do nível
func (e Emphasis) Style() TextStyle {
	return emphasisStyles[e]
}

// Color resolve a cor do nível contra o esquema do deck
func (e Emphasis) Color(scheme ColorScheme) string {
	switch e {
	case EmphasisHigh:
		return scheme.Primary
	case EmphasisMedium:
		return scheme.Secondary
	default:
		return scheme.Text
	}
}
