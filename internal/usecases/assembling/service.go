package assembling

import (
	"github.com/pkg/errors"

	"github.com/vfg2006/feedmob-reporting/infrastructure/assets"
	"github.com/vfg2006/feedmob-reporting/infrastructure/pptx"
	"github.com/vfg2006/feedmob-reporting/internal/config"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
	"github.com/vfg2006/feedmob-reporting/pkg/log"
)

// Assembler monta um documento de apresentação a partir de um DeckSpec
type Assembler interface {
	BuildPresentation(deck domain.DeckSpec) (*pptx.Presentation, error)
	Generate(deck domain.DeckSpec, outputPath string) (*pptx.Presentation, error)
}

// Service implementa Assembler com o catálogo de assets e a fonte de
// aleatoriedade injetados
type Service struct {
	cfg     *config.Config
	catalog assets.Catalog
	rng     Random
	logger  log.Logger
}

// NewService cria o serviço de montagem de decks
func NewService(cfg *config.Config, catalog assets.Catalog, rng Random) Assembler {
	return &Service{
		cfg:     cfg,
		catalog: catalog,
		rng:     rng,
		logger:  log.ForRun(),
	}
}

// BuildPresentation monta o documento em memória: um slide por SlideSpec
// conhecido, na ordem do deck, com os passes de auto-estilo aplicados
func (s *Service) BuildPresentation(deck domain.DeckSpec) (*pptx.Presentation, error) {
	deckScheme, err := s.deckScheme(deck)
	if err != nil {
		return nil, err
	}

	pres := pptx.New()
	pres.Title = deckTitle(deck)

	for i, spec := range deck.Slides {
		if spec.Type == "" {
			spec.Type = domain.SlideContent
		}
		if !spec.Type.Known() {
			s.logger.Warnf("Slide %d com tipo desconhecido %q, ignorado", i+1, spec.Type)
			continue
		}

		scheme := s.slideScheme(spec, deckScheme)
		slide := pres.AddSlide()

		hasBackground := s.applyBackground(slide, spec, deck.Background)
		s.buildSlide(slide, spec, scheme, hasBackground)
		s.applyLogo(slide, spec, hasBackground)

		s.logger.WithFields(log.Fields{
			"slide": i + 1,
			"type":  spec.Type,
		}).Debug("Slide montado")
	}

	return pres, nil
}

// Generate monta e grava o documento, devolvendo a apresentação gravada
// para as linhas de status do chamador
func (s *Service) Generate(deck domain.DeckSpec, outputPath string) (*pptx.Presentation, error) {
	pres, err := s.BuildPresentation(deck)
	if err != nil {
		return nil, err
	}

	if err := pres.Save(outputPath); err != nil {
		return nil, errors.Wrap(err, "saving presentation")
	}

	s.logger.WithFields(log.Fields{
		"output": outputPath,
		"slides": pres.SlideCount(),
	}).Info("Apresentação criada com sucesso")
	return pres, nil
}

// deckScheme resolve o esquema de cores do deck: o do JSON, se houver, senão
// o configurado. Nome desconhecido é erro — na CLI isso vira código de saída 1
func (s *Service) deckScheme(deck domain.DeckSpec) (domain.ColorScheme, error) {
	name := deck.ColorScheme
	if name == "" {
		name = s.cfg.Deck.ColorScheme
	}

	scheme, ok := domain.LookupColorScheme(name)
	if !ok {
		return domain.ColorScheme{}, errors.Wrapf(ErrUnknownColorScheme, "%q", name)
	}
	return scheme, nil
}

// slideScheme resolve o esquema por slide; nome desconhecido cai para o
// esquema do deck com aviso
func (s *Service) slideScheme(spec domain.SlideSpec, deckScheme domain.ColorScheme) domain.ColorScheme {
	if spec.ColorScheme == "" {
		return deckScheme
	}

	scheme, ok := domain.LookupColorScheme(spec.ColorScheme)
	if !ok {
		s.logger.Warnf("Esquema de cores desconhecido %q, usando %q", spec.ColorScheme, deckScheme.Name)
		return deckScheme
	}
	return scheme
}

// deckTitle usa o título do primeiro slide de abertura como título do
// documento (docProps)
func deckTitle(deck domain.DeckSpec) string {
	for _, spec := range deck.Slides {
		if spec.Type == domain.SlideTitle && spec.Title != "" {
			return spec.Title
		}
	}
	if len(deck.Slides) > 0 {
		return deck.Slides[0].Title
	}
	return ""
}
