package domain

import "sort"

// ColorScheme é uma paleta nomeada imutável. As cores são hex RRGGBB sem '#'
type ColorScheme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent1    string
	Accent2    string
	Accent3    string
	Text       string
	Background string
}

// Accent retorna uma das cores de destaque, ciclando accent1..3
func (c ColorScheme) Accent(i int) string {
	switch i % 3 {
	case 0:
		return c.Accent1
	case 1:
		return c.Accent2
	default:
		return c.Accent3
	}
}

// DefaultColorScheme é o esquema usado quando nenhum é informado
const DefaultColorScheme = "feedmob"

// colorSchemes é carregado uma vez na inicialização do processo e nunca
// modificado depois
var colorSchemes = map[string]ColorScheme{
	"feedmob": {
		Name:       "feedmob",
		Primary:    "2E5BFF",
		Secondary:  "8C54FF",
		Accent1:    "00C1D4",
		Accent2:    "FAD961",
		Accent3:    "F7936F",
		Text:       "2E384D",
		Background: "FFFFFF",
	},
	"midnight": {
		Name:       "midnight",
		Primary:    "7F5AF0",
		Secondary:  "2CB67D",
		Accent1:    "FF8906",
		Accent2:    "E53170",
		Accent3:    "94A1B2",
		Text:       "FFFFFE",
		Background: "16161A",
	},
	"ocean": {
		Name:       "ocean",
		Primary:    "006494",
		Secondary:  "1B98E0",
		Accent1:    "0582CA",
		Accent2:    "00A6FB",
		Accent3:    "051923",
		Text:       "13293D",
		Background: "F4F9FC",
	},
	"sunset": {
		Name:       "sunset",
		Primary:    "FF6B35",
		Secondary:  "9B2226",
		Accent1:    "F7931E",
		Accent2:    "FFD23F",
		Accent3:    "EE4266",
		Text:       "3D315B",
		Background: "FFF8F0",
	},
	"forest": {
		Name:       "forest",
		Primary:    "2D6A4F",
		Secondary:  "40916C",
		Accent1:    "52B788",
		Accent2:    "74C69D",
		Accent3:    "95D5B2",
		Text:       "1B4332",
		Background: "F6FFF8",
	},
	"corporate": {
		Name:       "corporate",
		Primary:    "1F4E79",
		Secondary:  "595959",
		Accent1:    "4472C4",
		Accent2:    "ED7D31",
		Accent3:    "A5A5A5",
		Text:       "262626",
		Background: "FFFFFF",
	},
}

// LookupColorScheme busca um esquema de cores pelo nome
func LookupColorScheme(name string) (ColorScheme, bool) {
	scheme, ok := colorSchemes[name]
	return scheme, ok
}

// ColorSchemeNames retorna os nomes de esquemas disponíveis, em ordem
// alfabética, para mensagens de uso da CLI
func ColorSchemeNames() []string {
	names := make([]string, 0, len(colorSchemes))
	for name := range colorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
