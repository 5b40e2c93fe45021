// deckbuilder monta um documento .pptx a partir de uma descrição JSON de
// slides (ou de títulos passados na linha de comando), com seleção
// automática de fundos e logos dirigida pelo conteúdo
package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/feedmob-reporting/infrastructure/assets"
	"github.com/vfg2006/feedmob-reporting/internal/config"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
	"github.com/vfg2006/feedmob-reporting/internal/usecases/assembling"
	"github.com/vfg2006/feedmob-reporting/pkg/log"
	"github.com/vfg2006/feedmob-reporting/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	outputPath        string
	deckTitle         string
	jsonPath          string
	deckSubtitle      string
	extraSlides       []string
	colorScheme       string
	backgroundImage   string
	noAutoBackgrounds bool
	noAutoLogos       bool
	assetsDir         string
)

var rootCmd = &cobra.Command{
	Use:   "deckbuilder",
	Short: "Gera apresentações .pptx a partir de JSON ou de títulos",
	Long: `Monta um documento de apresentação a partir de um arquivo JSON de
definição de slides (--json) ou de um título com slides extras
(--title e --slides).

Tipos de slide aceitos no JSON: title, content, blank, visual_content,
metrics_dashboard, section_header, comparison, two_column.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "caminho do arquivo .pptx de saída (obrigatório)")
	rootCmd.Flags().StringVar(&deckTitle, "title", "", "título da apresentação (cria o slide de abertura)")
	rootCmd.Flags().StringVarP(&jsonPath, "json", "j", "", "arquivo JSON com as definições de slides")
	rootCmd.Flags().StringVar(&deckSubtitle, "subtitle", "", "subtítulo do slide de abertura")
	rootCmd.Flags().StringSliceVar(&extraSlides, "slides", nil, "títulos de slides de conteúdo adicionais")
	rootCmd.Flags().StringVar(&colorScheme, "color-scheme", "", "esquema de cores do deck")
	rootCmd.Flags().StringVar(&backgroundImage, "background-image", "", "imagem de fundo explícita para todo o deck")
	rootCmd.Flags().BoolVar(&noAutoBackgrounds, "no-auto-backgrounds", false, "desliga a seleção automática de fundos")
	rootCmd.Flags().BoolVar(&noAutoLogos, "no-auto-logos", false, "desliga a inserção automática de logos")
	rootCmd.Flags().StringVar(&assetsDir, "assets-dir", "", "diretório raiz dos assets de imagem")

	rootCmd.MarkFlagRequired("output")
}

func run(cmd *cobra.Command, args []string) (err error) {
	// Qualquer pânico durante a geração vira uma mensagem de uma linha e
	// código de saída 1, nunca um stack trace para o usuário
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("creating presentation: %v", r)
		}
	}()

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	log.Setup(cfg.App.LogLevel)

	applyFlagOverrides(cmd, cfg)

	if _, ok := domain.LookupColorScheme(cfg.Deck.ColorScheme); !ok {
		return errors.Errorf("unknown color scheme %q (available: %s)",
			cfg.Deck.ColorScheme, strings.Join(domain.ColorSchemeNames(), ", "))
	}

	deck, err := buildDeckSpec(cmd)
	if err != nil {
		return err
	}
	log.L.Debugf("DeckSpec carregado: %s", utils.PrettyJson(deck))

	output := outputPath
	if !strings.HasSuffix(output, ".pptx") {
		output += ".pptx"
	}

	catalog := assets.NewDiskCatalog(cfg.Assets.Dir)
	service := assembling.NewService(cfg, catalog, assembling.NewRandom())

	pres, err := service.Generate(deck, output)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully created presentation: %s\n", output)
	fmt.Printf("Total slides: %d\n", pres.SlideCount())
	return nil
}

// applyFlagOverrides dá precedência às flags sobre o ambiente
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("color-scheme") {
		cfg.Deck.ColorScheme = colorScheme
	}
	if cmd.Flags().Changed("assets-dir") {
		cfg.Assets.Dir = assetsDir
	}
	if noAutoBackgrounds {
		cfg.Deck.AutoBackgrounds = false
	}
	if noAutoLogos {
		cfg.Deck.AutoLogos = false
	}
}

// buildDeckSpec monta o DeckSpec do arquivo JSON ou das flags de título.
// Uma das duas fontes é obrigatória
func buildDeckSpec(cmd *cobra.Command) (domain.DeckSpec, error) {
	var deck domain.DeckSpec

	switch {
	case jsonPath != "":
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return deck, errors.Wrapf(err, "file not found: %s", jsonPath)
		}
		if err := json.Unmarshal(data, &deck); err != nil {
			return deck, errors.Wrapf(err, "invalid JSON format in %s", jsonPath)
		}

	case deckTitle != "":
		deck.Slides = append(deck.Slides, domain.SlideSpec{
			Type:     domain.SlideTitle,
			Title:    deckTitle,
			Subtitle: deckSubtitle,
		})
		for _, title := range extraSlides {
			deck.Slides = append(deck.Slides, domain.SlideSpec{
				Type:  domain.SlideContent,
				Title: title,
			})
		}

	default:
		return deck, errors.New("either --title or --json must be provided")
	}

	// Flags de deck têm precedência sobre os campos do JSON: com a flag
	// presente, o valor dela já está em cfg.Deck e o campo do JSON é limpo
	if cmd.Flags().Changed("color-scheme") {
		deck.ColorScheme = ""
	}
	if backgroundImage != "" {
		deck.Background = backgroundImage
	}

	return deck, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
