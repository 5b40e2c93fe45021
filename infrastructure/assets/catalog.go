// Package assets lista as imagens de fundo e logos disponíveis no diretório
// de assets (<dir>/backgrounds e <dir>/logos) para o auto-estilo dos decks
package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:generate mockgen -source=catalog.go -destination=mocks/catalog_mock.go -package=mocks

// Catalog responde quais assets existem em disco. Só arquivos de imagem
// presentes no momento da consulta são listados
type Catalog interface {
	// Backgrounds retorna os nomes de arquivo dos fundos existentes
	Backgrounds() []string
	// Logos retorna os nomes de arquivo dos logos existentes
	Logos() []string
	// BackgroundPath resolve o nome de um fundo para o caminho completo
	BackgroundPath(name string) (string, bool)
	// LogoPath resolve o nome de um logo para o caminho completo
	LogoPath(name string) (string, bool)
}

const (
	backgroundsSubdir = "backgrounds"
	logosSubdir       = "logos"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// DiskCatalog implementa Catalog sobre a árvore de assets em disco
type DiskCatalog struct {
	dir string
}

// NewDiskCatalog cria um catálogo sobre o diretório raiz de assets
func NewDiskCatalog(dir string) *DiskCatalog {
	return &DiskCatalog{dir: dir}
}

// Backgrounds implementa Catalog
func (c *DiskCatalog) Backgrounds() []string {
	return c.listImages(backgroundsSubdir)
}

// Logos implementa Catalog
func (c *DiskCatalog) Logos() []string {
	return c.listImages(logosSubdir)
}

// BackgroundPath implementa Catalog
func (c *DiskCatalog) BackgroundPath(name string) (string, bool) {
	return c.resolve(backgroundsSubdir, name)
}

// LogoPath implementa Catalog
func (c *DiskCatalog) LogoPath(name string) (string, bool) {
	return c.resolve(logosSubdir, name)
}

func (c *DiskCatalog) listImages(subdir string) []string {
	entries, err := os.ReadDir(filepath.Join(c.dir, subdir))
	if err != nil {
		// Diretório ausente equivale a catálogo vazio
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names
}

func (c *DiskCatalog) resolve(subdir, name string) (string, bool) {
	path := filepath.Join(c.dir, subdir, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
