package assembling

import (
	"strings"

	"github.com/vfg2006/feedmob-reporting/infrastructure/pptx"
	"github.com/vfg2006/feedmob-reporting/internal/domain"
)

// backgroundCategory associa palavras-chave do conteúdo do slide a uma lista
// de candidatos de imagem de fundo
type backgroundCategory struct {
	name     string
	keywords []string
	files    []string
}

// A ordem importa: a primeira categoria com palavra-chave presente no texto
// do slide vence
var backgroundCategories = []backgroundCategory{
	{
		name:     "finance",
		keywords: []string{"revenue", "spend", "budget", "cost", "profit", "finance"},
		files:    []string{"finance_grid.png", "charts_blue.png"},
	},
	{
		name:     "growth",
		keywords: []string{"growth", "increase", "trend", "scale", "expansion"},
		files:    []string{"growth_curve.png", "arrows_up.png"},
	},
	{
		name:     "technology",
		keywords: []string{"tech", "platform", "api", "data", "integration"},
		files:    []string{"tech_mesh.png", "circuit_dark.png"},
	},
	{
		name:     "team",
		keywords: []string{"team", "people", "hiring", "culture"},
		files:    []string{"team_table.png", "office_light.png"},
	},
	{
		name:     "strategy",
		keywords: []string{"strategy", "roadmap", "plan", "vision"},
		files:    []string{"strategy_map.png", "compass.png"},
	},
}

// Conjuntos de elegibilidade do auto-estilo. São tabelas independentes de
// propósito: a divergência entre elas é uma decisão de política herdada do
// design original — não unificar (ver DESIGN.md)
var (
	noBackgroundTypes = map[domain.SlideType]bool{
		domain.SlideBlank:         true,
		domain.SlideVisualContent: true,
	}

	noLogoTypes = map[domain.SlideType]bool{
		domain.SlideTitle:         true,
		domain.SlideSectionHeader: true,
		domain.SlideBlank:         true,
	}
)

func (s *Service) autoBackgroundEnabled(spec domain.SlideSpec) bool {
	if spec.AutoBackground != nil {
		return *spec.AutoBackground
	}
	return s.cfg.Deck.AutoBackgrounds
}

func (s *Service) autoLogoEnabled(spec domain.SlideSpec) bool {
	if spec.AutoLogo != nil {
		return *spec.AutoLogo
	}
	return s.cfg.Deck.AutoLogos
}

// applyBackground aplica ao slide o fundo explícito (do slide ou do deck) ou
// o fundo automático. Retorna se algum fundo foi aplicado — o logo automático
// é suprimido nesse caso
func (s *Service) applyBackground(slide *pptx.Slide, spec domain.SlideSpec, deckBackground string) bool {
	explicit := spec.Background
	if explicit == "" {
		explicit = deckBackground
	}
	if explicit != "" {
		if err := slide.SetBackgroundImage(explicit); err != nil {
			s.logger.WithError(err).Warnf("Imagem de fundo não aplicada: %s", explicit)
			return false
		}
		return true
	}

	if noBackgroundTypes[spec.Type] || !s.autoBackgroundEnabled(spec) {
		return false
	}

	path := s.pickBackgroundPath(spec)
	if path == "" {
		return false
	}

	if err := slide.SetBackgroundImage(path); err != nil {
		s.logger.WithError(err).Warnf("Imagem de fundo não aplicada: %s", path)
		return false
	}
	return true
}

// pickBackgroundPath escolhe o fundo automático: a primeira categoria cujo
// texto do slide contém uma palavra-chave, com sorteio uniforme entre os
// candidatos dela que existem em disco; sem categoria (ou sem candidato
// existente), sorteio uniforme entre TODOS os fundos existentes; sem assets,
// nenhum fundo
func (s *Service) pickBackgroundPath(spec domain.SlideSpec) string {
	text := strings.ToLower(spec.Title + " " + strings.Join(spec.Content, " "))

	for _, category := range backgroundCategories {
		if !containsAny(text, category.keywords) {
			continue
		}

		var candidates []string
		for _, file := range category.files {
			if path, ok := s.catalog.BackgroundPath(file); ok {
				candidates = append(candidates, path)
			}
		}
		if len(candidates) > 0 {
			return candidates[s.rng.Intn(len(candidates))]
		}

		s.logger.Debugf("Categoria %q sem candidatos em disco, usando fallback", category.name)
		break
	}

	all := s.catalog.Backgrounds()
	if len(all) == 0 {
		return ""
	}

	path, ok := s.catalog.BackgroundPath(all[s.rng.Intn(len(all))])
	if !ok {
		return ""
	}
	return path
}

// logoEligible aplica as regras de elegibilidade de logo por tipo de slide
func logoEligible(spec domain.SlideSpec, hasBackground bool) bool {
	return !hasBackground && !noLogoTypes[spec.Type]
}

// applyLogo insere um logo sorteado na região de logo, quando elegível
func (s *Service) applyLogo(slide *pptx.Slide, spec domain.SlideSpec, hasBackground bool) {
	if !s.autoLogoEnabled(spec) || !logoEligible(spec, hasBackground) {
		return
	}

	logos := s.catalog.Logos()
	if len(logos) == 0 {
		s.logger.Debug("Nenhum logo disponível no catálogo")
		return
	}

	name := logos[s.rng.Intn(len(logos))]
	path, ok := s.catalog.LogoPath(name)
	if !ok {
		return
	}

	if _, err := slide.AddPicture(path, box(domain.LogoRegion)); err != nil {
		s.logger.WithError(err).Warnf("Logo não aplicado: %s", name)
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
