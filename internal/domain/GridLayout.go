package domain

// O layout dos slides é derivado de uma grade fixa de 12 colunas por 8
// linhas sobre um slide 16:9 de 13.333 x 7.5 polegadas. Todas as regiões são
// retângulos em polegadas fracionárias calculados uma vez na inicialização
// do processo e tratados como imutáveis.

const (
	SlideWidthInches  = 13.333
	SlideHeightInches = 7.5

	gridCols = 12
	gridRows = 8
)

// Rect é um retângulo em polegadas a partir do canto superior esquerdo
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Inset encolhe o retângulo pela margem dada em todos os lados
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		Left:   r.Left + margin,
		Top:    r.Top + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}

// GridCell converte uma célula da grade (coluna, linha e spans) em polegadas
func GridCell(col, row, colSpan, rowSpan int) Rect {
	colWidth := SlideWidthInches / gridCols
	rowHeight := SlideHeightInches / gridRows

	return Rect{
		Left:   float64(col) * colWidth,
		Top:    float64(row) * rowHeight,
		Width:  float64(colSpan) * colWidth,
		Height: float64(rowSpan) * rowHeight,
	}
}

// Regiões nomeadas usadas pelos construtores de slide
var (
	// Barra de título no topo dos slides de conteúdo
	TitleRegion = GridCell(0, 0, gridCols, 1).Inset(0.2)

	// Corpo principal de bullets
	BodyRegion = GridCell(1, 1, 10, 6).Inset(0.1)

	// Título e subtítulo centrais do slide de abertura
	CenterTitleRegion    = GridCell(1, 2, 10, 2)
	CenterSubtitleRegion = GridCell(1, 4, 10, 1)

	// Barra de destaque sob o título de seção
	SectionUnderlineRegion = GridCell(4, 5, 4, 1).Inset(0.4)

	// Cabeçalhos e colunas dos layouts de comparação e duas colunas
	ColumnHeaderLeftRegion  = GridCell(0, 1, 6, 1).Inset(0.15)
	ColumnHeaderRightRegion = GridCell(6, 1, 6, 1).Inset(0.15)
	ColumnLeftRegion        = GridCell(0, 2, 6, 5).Inset(0.15)
	ColumnRightRegion       = GridCell(6, 2, 6, 5).Inset(0.15)

	// Imagem grande centralizada e legenda do slide visual
	VisualRegion  = GridCell(2, 1, 8, 5).Inset(0.1)
	CaptionRegion = GridCell(2, 6, 8, 1).Inset(0.1)

	// Logo no canto inferior direito
	LogoRegion = GridCell(10, 7, 2, 1).Inset(0.12)
)

const metricBoxesPerRow = 3

// MetricBoxRegion posiciona a caixa de métrica de índice i (0..5) em duas
// fileiras de três caixas
func MetricBoxRegion(i int) Rect {
	col := (i % metricBoxesPerRow) * 4
	row := 2 + (i/metricBoxesPerRow)*3
	return GridCell(col, row, 4, 3).Inset(0.25)
}
