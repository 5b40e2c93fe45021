package domain

import "strings"

// SlideType identifica qual construtor de slide processa a especificação
type SlideType string

const (
	SlideTitle            SlideType = "title"
	SlideContent          SlideType = "content"
	SlideBlank            SlideType = "blank"
	SlideVisualContent    SlideType = "visual_content"
	SlideMetricsDashboard SlideType = "metrics_dashboard"
	SlideSectionHeader    SlideType = "section_header"
	SlideComparison       SlideType = "comparison"
	SlideTwoColumn        SlideType = "two_column"
)

// Known informa se o tipo possui um construtor registrado
func (t SlideType) Known() bool {
	switch t {
	case SlideTitle, SlideContent, SlideBlank, SlideVisualContent,
		SlideMetricsDashboard, SlideSectionHeader, SlideComparison, SlideTwoColumn:
		return true
	}
	return false
}

// DeckSpec descreve uma apresentação completa. Os campos de nível de deck
// valem como padrão para todos os slides; flags da CLI têm precedência
type DeckSpec struct {
	Slides      []SlideSpec `json:"slides"`
	ColorScheme string      `json:"color_scheme"`
	Background  string      `json:"background"`
}

// Metric é um par valor/rótulo exibido no dashboard de métricas
type Metric struct {
	Value TextValue `json:"value"`
	Label string    `json:"label"`
}

// Lines aceita uma string única ou uma lista de strings no JSON
type Lines []string

// UnmarshalJSON implementa json.Unmarshaler
func (l *Lines) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(token, `"`) {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*l = Lines{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = Lines(many)
	return nil
}

// SlideSpec é a variante etiquetada que descreve um slide. É construída a
// partir do JSON de entrada, consumida uma única vez pelo construtor do seu
// tipo e descartada — nunca sofre mutação depois de criada.
//
// Campos por tipo:
//   - title: Title, Subtitle
//   - content: Title, Content, Image, ImageLeft, ImageTop
//   - blank: Text, TextLeft, TextTop, FontSize, Image, ImageLeft, ImageTop
//   - visual_content: Title, Image, Caption
//   - metrics_dashboard: Title, Metrics
//   - section_header: Title, Subtitle
//   - comparison: Title, LeftTitle, RightTitle, LeftContent, RightContent
//   - two_column: Title, LeftContent, RightContent
//
// Background, ColorScheme, AutoBackground e AutoLogo valem para qualquer
// tipo e sobrepõem os padrões do processo slide a slide.
type SlideSpec struct {
	Type     SlideType `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`

	Content   Lines    `json:"content"`
	Image     string   `json:"image"`
	ImageLeft *float64 `json:"image_left"`
	ImageTop  *float64 `json:"image_top"`

	Text     string   `json:"text"`
	TextLeft *float64 `json:"text_left"`
	TextTop  *float64 `json:"text_top"`
	FontSize int      `json:"font_size"`

	Caption string   `json:"caption"`
	Metrics []Metric `json:"metrics"`

	LeftTitle    string `json:"left_title"`
	RightTitle   string `json:"right_title"`
	LeftContent  Lines  `json:"left_content"`
	RightContent Lines  `json:"right_content"`

	Background     string `json:"background"`
	ColorScheme    string `json:"color_scheme"`
	AutoBackground *bool  `json:"auto_background"`
	AutoLogo       *bool  `json:"auto_logo"`
}
