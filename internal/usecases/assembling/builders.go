package assembling

import (
	"github.com/vfg2006/feedmob-reporting/infrastructure/pptx"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
)

// Posições e tamanhos padrão herdados do gerador original, em polegadas
const (
	defaultContentImageLeft = 5.0
	defaultContentImageTop  = 2.0
	defaultBlankImageLeft   = 1.0
	defaultBlankImageTop    = 1.0
	defaultTextLeft         = 1.0
	defaultTextTop          = 1.0
	defaultTextWidth        = 8.0
	defaultTextHeight       = 1.0
	defaultFontSize         = 18

	// Máximo de caixas de métrica no dashboard (duas fileiras de três)
	maxMetricBoxes = 6
)

// box converte uma região do grid do domínio para o retângulo do escritor
func box(r domain.Rect) pptx.Rect {
	return pptx.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

func value(ptr *float64, fallback float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// buildSlide despacha a especificação para o construtor do seu tipo
func (s *Service) buildSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme, hasBackground bool) {
	switch spec.Type {
	case domain.SlideTitle:
		s.buildTitleSlide(slide, spec, scheme)
	case domain.SlideContent:
		s.buildContentSlide(slide, spec, scheme)
	case domain.SlideBlank:
		s.buildBlankSlide(slide, spec, scheme)
	case domain.SlideVisualContent:
		s.buildVisualContentSlide(slide, spec, scheme)
	case domain.SlideMetricsDashboard:
		s.buildMetricsDashboardSlide(slide, spec, scheme)
	case domain.SlideSectionHeader:
		s.buildSectionHeaderSlide(slide, spec, scheme, hasBackground)
	case domain.SlideComparison:
		s.buildComparisonSlide(slide, spec, scheme)
	case domain.SlideTwoColumn:
		s.buildTwoColumnSlide(slide, spec, scheme)
	}
}

// addTitleBar coloca o título na barra superior dos slides de conteúdo
func (s *Service) addTitleBar(slide *pptx.Slide, title string, scheme domain.ColorScheme) {
	if title == "" {
		return
	}

	slide.AddTextBox(box(domain.TitleRegion)).
		SetAnchor(pptx.AnchorMiddle).
		AddParagraph().
		AddRun(title).
		SetSize(28).
		SetBold(true).
		SetColor(scheme.Primary)
}

// addImage insere uma imagem em tamanho nativo; arquivo ausente gera aviso e
// o slide segue sem a imagem
func (s *Service) addImage(slide *pptx.Slide, path string, left, top float64) {
	if _, err := slide.AddPicture(path, pptx.Rect{Left: left, Top: top}); err != nil {
		s.logger.WithError(err).Warnf("Arquivo de imagem não encontrado: %s", path)
	}
}

func (s *Service) buildTitleSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	slide.AddTextBox(box(domain.CenterTitleRegion)).
		SetAnchor(pptx.AnchorMiddle).
		AddParagraph().
		SetAlignment(pptx.AlignCenter).
		AddRun(spec.Title).
		SetSize(40).
		SetBold(true).
		SetColor(scheme.Primary)

	if spec.Subtitle != "" {
		slide.AddTextBox(box(domain.CenterSubtitleRegion)).
			SetAnchor(pptx.AnchorMiddle).
			AddParagraph().
			SetAlignment(pptx.AlignCenter).
			AddRun(spec.Subtitle).
			SetSize(20).
			SetColor(scheme.Secondary)
	}
}

func (s *Service) buildContentSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	s.addTitleBar(slide, spec.Title, scheme)

	if len(spec.Content) > 0 {
		addBullets(slide.AddTextBox(box(domain.BodyRegion)), spec.Content, scheme)
	}

	if spec.Image != "" {
		s.addImage(slide, spec.Image,
			value(spec.ImageLeft, defaultContentImageLeft),
			value(spec.ImageTop, defaultContentImageTop))
	}
}

func (s *Service) buildBlankSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	if spec.Text != "" {
		rect := pptx.Rect{
			Left:   value(spec.TextLeft, defaultTextLeft),
			Top:    value(spec.TextTop, defaultTextTop),
			Width:  defaultTextWidth,
			Height: defaultTextHeight,
		}

		size := spec.FontSize
		if size == 0 {
			size = defaultFontSize
		}

		slide.AddTextBox(rect).
			AddParagraph().
			AddRun(spec.Text).
			SetSize(size).
			SetColor(scheme.Text)
	}

	if spec.Image != "" {
		s.addImage(slide, spec.Image,
			value(spec.ImageLeft, defaultBlankImageLeft),
			value(spec.ImageTop, defaultBlankImageTop))
	}
}

func (s *Service) buildVisualContentSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	s.addTitleBar(slide, spec.Title, scheme)

	if spec.Image != "" {
		if _, err := slide.AddPicture(spec.Image, box(domain.VisualRegion)); err != nil {
			s.logger.WithError(err).Warnf("Arquivo de imagem não encontrado: %s", spec.Image)
		}
	}

	if spec.Caption != "" {
		slide.AddTextBox(box(domain.CaptionRegion)).
			AddParagraph().
			SetAlignment(pptx.AlignCenter).
			AddRun(spec.Caption).
			SetSize(14).
			SetColor(scheme.Secondary)
	}
}

func (s *Service) buildMetricsDashboardSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	s.addTitleBar(slide, spec.Title, scheme)

	metrics := spec.Metrics
	if len(metrics) > maxMetricBoxes {
		s.logger.Warnf("Dashboard com %d métricas; exibindo as %d primeiras", len(metrics), maxMetricBoxes)
		metrics = metrics[:maxMetricBoxes]
	}

	for i, metric := range metrics {
		sh := slide.AddShape(box(domain.MetricBoxRegion(i)), scheme.Accent(i), true)

		sh.AddParagraph().
			SetAlignment(pptx.AlignCenter).
			AddRun(string(metric.Value)).
			SetSize(28).
			SetBold(true).
			SetColor(scheme.Background)

		sh.AddParagraph().
			SetAlignment(pptx.AlignCenter).
			AddRun(metric.Label).
			SetSize(14).
			SetColor(scheme.Background)
	}
}

func (s *Service) buildSectionHeaderSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme, hasBackground bool) {
	// O preenchimento primário só entra quando nenhuma imagem de fundo foi
	// aplicada ao slide
	if !hasBackground {
		slide.SetBackgroundColor(scheme.Primary)
	}

	slide.AddTextBox(box(domain.CenterTitleRegion)).
		SetAnchor(pptx.AnchorMiddle).
		AddParagraph().
		SetAlignment(pptx.AlignCenter).
		AddRun(spec.Title).
		SetSize(36).
		SetBold(true).
		SetColor(scheme.Background)

	if spec.Subtitle != "" {
		slide.AddTextBox(box(domain.CenterSubtitleRegion)).
			SetAnchor(pptx.AnchorMiddle).
			AddParagraph().
			SetAlignment(pptx.AlignCenter).
			AddRun(spec.Subtitle).
			SetSize(20).
			SetColor(scheme.Background)
	}

	slide.AddShape(box(domain.SectionUnderlineRegion), scheme.Accent1, false)
}

func (s *Service) buildComparisonSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	s.addTitleBar(slide, spec.Title, scheme)

	addColumnHeader := func(region domain.Rect, title string) {
		if title == "" {
			return
		}
		slide.AddTextBox(box(region)).
			SetAnchor(pptx.AnchorMiddle).
			AddParagraph().
			AddRun(title).
			SetSize(18).
			SetBold(true).
			SetColor(scheme.Secondary)
	}

	addColumnHeader(domain.ColumnHeaderLeftRegion, spec.LeftTitle)
	addColumnHeader(domain.ColumnHeaderRightRegion, spec.RightTitle)

	if len(spec.LeftContent) > 0 {
		addBullets(slide.AddTextBox(box(domain.ColumnLeftRegion)), spec.LeftContent, scheme)
	}
	if len(spec.RightContent) > 0 {
		addBullets(slide.AddTextBox(box(domain.ColumnRightRegion)), spec.RightContent, scheme)
	}
}

func (s *Service) buildTwoColumnSlide(slide *pptx.Slide, spec domain.SlideSpec, scheme domain.ColorScheme) {
	s.addTitleBar(slide, spec.Title, scheme)

	if len(spec.LeftContent) > 0 {
		addBullets(slide.AddTextBox(box(domain.ColumnLeftRegion)), spec.LeftContent, scheme)
	}
	if len(spec.RightContent) > 0 {
		addBullets(slide.AddTextBox(box(domain.ColumnRightRegion)), spec.RightContent, scheme)
	}
}
