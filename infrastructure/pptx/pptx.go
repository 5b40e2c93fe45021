// Package pptx escreve apresentações PowerPoint (PresentationML dentro de um
// pacote OPC/zip) sem dependências externas. O modelo é o mínimo que os
// construtores de deck precisam: slides com caixas de texto, formas, imagens
// e fundo por cor ou imagem.
package pptx

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/feedmob-reporting/pkg/utils"
)

// ErrUnsupportedMedia indica uma extensão de imagem fora de png/jpg/jpeg
var ErrUnsupportedMedia = errors.New("unsupported media type")

var mediaContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Presentation é um documento em construção. Cada execução começa com um
// objeto novo; nada é compartilhado entre gerações
type Presentation struct {
	Title   string
	Creator string

	slides   []*Slide
	media    []*mediaFile
	mediaIdx map[string]int // caminho de origem -> índice em media
	created  time.Time
}

type mediaFile struct {
	name        string // nome dentro de ppt/media
	contentType string
	data        []byte
}

// New cria uma apresentação 16:9 vazia
func New() *Presentation {
	return &Presentation{
		Creator:  "feedmob-reporting",
		mediaIdx: make(map[string]int),
		created:  time.Now().UTC(),
	}
}

// AddSlide acrescenta um slide em branco ao final do deck
func (p *Presentation) AddSlide() *Slide {
	slide := &Slide{pres: p, bgMedia: -1}
	p.slides = append(p.slides, slide)
	return slide
}

// Slides retorna os slides na ordem do deck
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// SlideCount retorna o número de slides
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// addMedia carrega o arquivo para o pacote, deduplicando pelo caminho de
// origem: a mesma imagem usada em vários slides entra uma única vez
func (p *Presentation) addMedia(path string) (int, error) {
	if idx, ok := p.mediaIdx[path]; ok {
		return idx, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := mediaContentTypes[ext]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedMedia, "%s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "reading media %s", path)
	}

	idx := len(p.media)
	p.media = append(p.media, &mediaFile{
		name:        mediaName(idx, ext),
		contentType: contentType,
		data:        data,
	})
	p.mediaIdx[path] = idx
	return idx, nil
}

// WriteTo serializa o pacote completo no writer
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	counter := &countingWriter{w: w}
	zw := zip.NewWriter(counter)

	if err := p.writeParts(zw); err != nil {
		zw.Close()
		return counter.n, err
	}

	if err := zw.Close(); err != nil {
		return counter.n, errors.Wrap(err, "closing pptx package")
	}
	return counter.n, nil
}

// Save grava o documento de forma atômica: escreve em um arquivo temporário
// ao lado do destino e renomeia no final, para nunca deixar um .pptx truncado
func (p *Presentation) Save(path string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "generating temp file suffix")
	}
	tmp := path + ".tmp-" + id

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "creating %s", tmp)
	}

	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "closing %s", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "renaming %s", tmp)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
