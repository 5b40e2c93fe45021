package assembling

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	assetmocks "github.com/vfg2006/feedmob-reporting/infrastructure/assets/mocks"
	"github.com/vfg2006/feedmob-reporting/internal/config"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
	"github.com/vfg2006/feedmob-reporting/internal/usecases/assembling/mocks"
)

func manualConfig() *config.Config {
	cfg := autoConfig()
	cfg.Deck.AutoBackgrounds = false
	cfg.Deck.AutoLogos = false
	return cfg
}

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 2))))
	return path
}

func TestBuildPresentation_FimAFim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Type: domain.SlideTitle, Title: "FeedMob Q3", Subtitle: "Resultados"},
			{
				Type:  domain.SlideContent,
				Title: "Agenda",
				Content: domain.Lines{
					"item 1", "item 2", "item 3", "item 4",
					"item 5", "item 6", "item 7",
				},
			},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)
	require.Equal(t, 2, pres.SlideCount())
	assert.Equal(t, "FeedMob Q3", pres.Title)

	titleLines := pres.Slides()[0].PlainText()
	require.Len(t, titleLines, 2)
	assert.Equal(t, "FeedMob Q3", titleLines[0])
	assert.Equal(t, "Resultados", titleLines[1])

	// Título + no máximo 6 bullets: o sétimo item não aparece
	contentLines := pres.Slides()[1].PlainText()
	require.Len(t, contentLines, 7)
	assert.Equal(t, "Agenda", contentLines[0])
	assert.Equal(t, "• item 6", contentLines[6])
	assert.NotContains(t, strings.Join(contentLines, "\n"), "item 7")
}

func TestBuildPresentation_TipoDesconhecidoIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Type: domain.SlideType("pie_chart"), Title: "ignorado"},
			{Type: domain.SlideTitle, Title: "mantido"},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)
	assert.Equal(t, 1, pres.SlideCount())
}

func TestBuildPresentation_TipoVazioViraContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Title: "Sem tipo", Content: domain.Lines{"linha"}},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)
	require.Equal(t, 1, pres.SlideCount())
	assert.Equal(t, []string{"Sem tipo", "• linha"}, pres.Slides()[0].PlainText())
}

func TestBuildPresentation_DashboardCortaEmSeisMetricas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	metrics := make([]domain.Metric, 0, 8)
	for _, v := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		metrics = append(metrics, domain.Metric{Value: domain.TextValue(v), Label: "m" + v})
	}

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Type: domain.SlideMetricsDashboard, Title: "KPIs", Metrics: metrics},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)

	lines := pres.Slides()[0].PlainText()
	// Título + 6 caixas com valor e rótulo
	assert.Len(t, lines, 13)
	assert.NotContains(t, strings.Join(lines, "\n"), "m7")
}

func TestBuildPresentation_EsquemaDesconhecidoNoDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		ColorScheme: "neon",
		Slides:      []domain.SlideSpec{{Type: domain.SlideTitle, Title: "x"}},
	}

	_, err := service.BuildPresentation(deck)
	require.ErrorIs(t, err, ErrUnknownColorScheme)
}

func TestBuildPresentation_EsquemaDesconhecidoNoSlideCaiParaODeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Type: domain.SlideTitle, Title: "x", ColorScheme: "neon"},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)
	assert.Equal(t, 1, pres.SlideCount())
}

func TestBuildPresentation_FundoAutomaticoDeterministico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	bgPath := writeTestPNG(t, dir, "finance_grid.png")

	catalog := assetmocks.NewMockCatalog(ctrl)
	rng := mocks.NewMockRandom(ctrl)
	service := newTestService(autoConfig(), catalog, rng)

	catalog.EXPECT().BackgroundPath("finance_grid.png").Return(bgPath, true)
	catalog.EXPECT().BackgroundPath("charts_blue.png").Return("", false)
	rng.EXPECT().Intn(1).Return(0)
	// Fundo aplicado suprime o logo; o catálogo de logos não é consultado

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{
			{Type: domain.SlideContent, Title: "Revenue recap", Content: domain.Lines{"linha"}},
		},
	}

	pres, err := service.BuildPresentation(deck)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = pres.WriteTo(&buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var mediaParts []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/media/") {
			mediaParts = append(mediaParts, f.Name)
		}
	}
	assert.Equal(t, []string{"ppt/media/image1.png"}, mediaParts)
}

func TestGenerate_GravaArquivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(manualConfig(), assetmocks.NewMockCatalog(ctrl), mocks.NewMockRandom(ctrl))

	deck := domain.DeckSpec{
		Slides: []domain.SlideSpec{{Type: domain.SlideTitle, Title: "x"}},
	}

	output := filepath.Join(t.TempDir(), "deck.pptx")
	pres, err := service.Generate(deck, output)
	require.NoError(t, err)
	assert.Equal(t, 1, pres.SlideCount())

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Gravação atômica: nenhum temporário sobra ao lado do destino
	entries, err := os.ReadDir(filepath.Dir(output))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
