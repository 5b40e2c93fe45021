package pptx

import "strings"

// Alignment é o alinhamento horizontal de um parágrafo
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignCenter Alignment = "ctr"
	AlignRight  Alignment = "r"
)

// Anchor é a ancoragem vertical do texto dentro da forma
type Anchor string

const (
	AnchorTop    Anchor = "t"
	AnchorMiddle Anchor = "ctr"
	AnchorBottom Anchor = "b"
)

// Slide acumula as formas na ordem de inserção. O fundo é por cor OU por
// imagem; a última atribuição vence
type Slide struct {
	pres    *Presentation
	bgColor string
	bgMedia int
	shapes  []shape
}

type shape interface {
	plainText() []string
}

// SetBackgroundColor preenche o fundo do slide com uma cor RRGGBB
func (s *Slide) SetBackgroundColor(hex string) {
	s.bgColor = hex
	s.bgMedia = -1
}

// SetBackgroundImage estica a imagem como fundo do slide
func (s *Slide) SetBackgroundImage(path string) error {
	idx, err := s.pres.addMedia(path)
	if err != nil {
		return err
	}
	s.bgMedia = idx
	s.bgColor = ""
	return nil
}

// AddTextBox cria uma caixa de texto sem preenchimento na região dada
func (s *Slide) AddTextBox(r Rect) *TextBox {
	box := &TextBox{rect: r, anchor: AnchorTop}
	s.shapes = append(s.shapes, box)
	return box
}

// AddShape cria uma forma preenchida (retângulo, opcionalmente arredondado)
// que também pode receber texto
func (s *Slide) AddShape(r Rect, fillHex string, rounded bool) *Shape {
	sp := &Shape{rect: r, fill: fillHex, rounded: rounded, anchor: AnchorMiddle}
	s.shapes = append(s.shapes, sp)
	return sp
}

// AddPicture insere a imagem na região dada. Com extensão zero no retângulo,
// usa o tamanho nativo da imagem a 96 DPI
func (s *Slide) AddPicture(path string, r Rect) (*Picture, error) {
	idx, err := s.pres.addMedia(path)
	if err != nil {
		return nil, err
	}

	if r.Width == 0 && r.Height == 0 {
		w, h, err := imageSizeInches(s.pres.media[idx].data)
		if err != nil {
			return nil, err
		}
		r.Width, r.Height = w, h
	}

	pic := &Picture{rect: r, media: idx}
	s.shapes = append(s.shapes, pic)
	return pic, nil
}

// PlainText devolve cada parágrafo de texto do slide como uma linha, na
// ordem das formas. Útil para inspeção e testes
func (s *Slide) PlainText() []string {
	var lines []string
	for _, sh := range s.shapes {
		lines = append(lines, sh.plainText()...)
	}
	return lines
}

// TextBox é uma caixa de texto sem borda nem preenchimento
type TextBox struct {
	rect   Rect
	anchor Anchor
	paras  []*Paragraph
}

// SetAnchor define a ancoragem vertical do texto
func (t *TextBox) SetAnchor(a Anchor) *TextBox {
	t.anchor = a
	return t
}

// AddParagraph acrescenta um parágrafo à caixa
func (t *TextBox) AddParagraph() *Paragraph {
	p := &Paragraph{align: AlignLeft}
	t.paras = append(t.paras, p)
	return p
}

func (t *TextBox) plainText() []string { return paragraphLines(t.paras) }

// Shape é um retângulo preenchido com corpo de texto opcional
type Shape struct {
	rect    Rect
	fill    string
	rounded bool
	anchor  Anchor
	paras   []*Paragraph
}

// AddParagraph acrescenta um parágrafo ao corpo da forma
func (s *Shape) AddParagraph() *Paragraph {
	p := &Paragraph{align: AlignCenter}
	s.paras = append(s.paras, p)
	return p
}

func (s *Shape) plainText() []string { return paragraphLines(s.paras) }

// Picture é uma imagem posicionada no slide
type Picture struct {
	rect  Rect
	media int
}

func (p *Picture) plainText() []string { return nil }

// Paragraph agrupa runs com um alinhamento comum
type Paragraph struct {
	align Alignment
	runs  []*Run
}

// SetAlignment define o alinhamento horizontal do parágrafo
func (p *Paragraph) SetAlignment(a Alignment) *Paragraph {
	p.align = a
	return p
}

// AddRun acrescenta um trecho de texto com estilo próprio
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text, sizePt: 18}
	p.runs = append(p.runs, r)
	return r
}

// Run é um trecho de texto com tamanho, peso e cor próprios
type Run struct {
	text   string
	sizePt int
	bold   bool
	italic bool
	color  string
}

// SetSize define o tamanho da fonte em pontos
func (r *Run) SetSize(pt int) *Run {
	r.sizePt = pt
	return r
}

// SetBold liga ou desliga o negrito
func (r *Run) SetBold(bold bool) *Run {
	r.bold = bold
	return r
}

// SetItalic liga ou desliga o itálico
func (r *Run) SetItalic(italic bool) *Run {
	r.italic = italic
	return r
}

// SetColor define a cor do texto em hex RRGGBB
func (r *Run) SetColor(hex string) *Run {
	r.color = hex
	return r
}

func paragraphLines(paras []*Paragraph) []string {
	lines := make([]string, 0, len(paras))
	for _, p := range paras {
		var b strings.Builder
		for _, r := range p.runs {
			b.WriteString(r.text)
		}
		lines = append(lines, b.String())
	}
	return lines
}
