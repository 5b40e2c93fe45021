package pptx

import (
	"bytes"
	"image"
	"math"

	// Formatos de imagem aceitos em ppt/media
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

// Geometria do PresentationML: posições em EMU (914400 por polegada),
// tamanhos de fonte em centésimos de ponto.
const (
	emuPerInch = 914400

	// Slide 16:9 padrão (13.333 x 7.5 polegadas)
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000

	// Resolução assumida ao dimensionar imagens pelo tamanho nativo
	imageDPI = 96
)

// Rect é um retângulo em polegadas a partir do canto superior esquerdo
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

func centipoints(pt int) int {
	return pt * 100
}

// imageSizeInches mede a imagem decodificando só o cabeçalho e converte
// pixels em polegadas a 96 DPI
func imageSizeInches(data []byte) (width, height float64, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, errors.Wrap(err, "decoding image dimensions")
	}
	return float64(cfg.Width) / imageDPI, float64(cfg.Height) / imageDPI, nil
}
