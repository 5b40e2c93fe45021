package pptx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))))
	return path
}

func readPackage(t *testing.T, p *Presentation) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWriteTo_InventarioDePartes(t *testing.T) {
	p := New()
	p.Title = "Deck de teste"
	p.AddSlide()
	p.AddSlide()

	parts := readPackage(t, p)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	} {
		assert.Contains(t, parts, name)
	}

	assert.Contains(t, parts["[Content_Types].xml"], `PartName="/ppt/slides/slide2.xml"`)
	assert.Contains(t, parts["docProps/core.xml"], "<dc:title>Deck de teste</dc:title>")
	assert.Contains(t, parts["docProps/app.xml"], "<Slides>2</Slides>")
	assert.Contains(t, parts["ppt/presentation.xml"], `<p:sldId id="257" r:id="rId3"/>`)
}

func TestSlideXML_TextoEscapado(t *testing.T) {
	p := New()
	slide := p.AddSlide()

	slide.AddTextBox(Rect{Left: 1, Top: 1, Width: 4, Height: 1}).
		AddParagraph().
		AddRun(`<Spend & "Gross"> 'Q3'`).
		SetSize(20).
		SetBold(true).
		SetColor("FF0000")

	parts := readPackage(t, p)
	slideXML := parts["ppt/slides/slide1.xml"]

	assert.Contains(t, slideXML, "&lt;Spend &amp; &quot;Gross&quot;&gt; &apos;Q3&apos;")
	assert.Contains(t, slideXML, `sz="2000" b="1"`)
	assert.Contains(t, slideXML, `<a:srgbClr val="FF0000"/>`)
	assert.NotContains(t, slideXML, `<Spend`)
}

func TestAddPicture_TamanhoNativo(t *testing.T) {
	dir := t.TempDir()
	// 96x48 px a 96 DPI = 1.0 x 0.5 polegadas
	path := writePNG(t, dir, "native.png", 96, 48)

	p := New()
	slide := p.AddSlide()

	_, err := slide.AddPicture(path, Rect{Left: 1, Top: 1})
	require.NoError(t, err)

	parts := readPackage(t, p)
	assert.Contains(t, parts["ppt/slides/slide1.xml"], `<a:ext cx="914400" cy="457200"/>`)
}

func TestAddPicture_Erros(t *testing.T) {
	p := New()
	slide := p.AddSlide()

	_, err := slide.AddPicture("inexistente.png", Rect{})
	require.Error(t, err)

	_, err = slide.AddPicture("anim.gif", Rect{})
	require.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestMedia_Deduplicacao(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "logo.png", 4, 4)

	p := New()
	first := p.AddSlide()
	second := p.AddSlide()

	_, err := first.AddPicture(path, Rect{Left: 1, Top: 1, Width: 1, Height: 1})
	require.NoError(t, err)
	_, err = second.AddPicture(path, Rect{Left: 2, Top: 2, Width: 1, Height: 1})
	require.NoError(t, err)
	require.NoError(t, second.SetBackgroundImage(path))

	parts := readPackage(t, p)

	var media []string
	for name := range parts {
		if strings.HasPrefix(name, "ppt/media/") {
			media = append(media, name)
		}
	}
	require.Len(t, media, 1)

	// Os dois slides referenciam a mesma mídia via rels próprios
	assert.Contains(t, parts["ppt/slides/_rels/slide1.xml.rels"], "../media/image1.png")
	assert.Contains(t, parts["ppt/slides/_rels/slide2.xml.rels"], "../media/image1.png")
}

func TestFundos(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "bg.png", 4, 4)

	p := New()
	colored := p.AddSlide()
	colored.SetBackgroundColor("1F4E79")

	imaged := p.AddSlide()
	require.NoError(t, imaged.SetBackgroundImage(path))

	parts := readPackage(t, p)

	assert.Contains(t, parts["ppt/slides/slide1.xml"], `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="1F4E79"/></a:solidFill>`)
	assert.Contains(t, parts["ppt/slides/slide2.xml"], `<a:blip r:embed="rId2"/>`)
}

func TestSave_Atomico(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.pptx")

	p := New()
	p.AddSlide()
	require.NoError(t, p.Save(output))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.pptx", entries[0].Name())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	_, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
}

func TestPlainText(t *testing.T) {
	p := New()
	slide := p.AddSlide()

	slide.AddTextBox(Rect{Left: 1, Top: 1, Width: 4, Height: 1}).
		AddParagraph().
		AddRun("primeira linha")

	shape := slide.AddShape(Rect{Left: 1, Top: 3, Width: 2, Height: 1}, "00C1D4", true)
	shape.AddParagraph().AddRun("42%")
	shape.AddParagraph().AddRun("conversão")

	assert.Equal(t, []string{"primeira linha", "42%", "conversão"}, slide.PlainText())
}
