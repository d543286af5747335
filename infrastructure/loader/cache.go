package loader

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/deriving"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache é um DatasetLoader com invalidação explícita
type Cache interface {
	DatasetLoader
	Warnings(path string) []domain.Warning
	Invalidate(path string)
	InvalidateAll()
	Stale(path string) (bool, error)
}

// fileIdentity identifica uma versão do arquivo em disco
type fileIdentity struct {
	size    int64
	modTime time.Time
}

type cacheEntry struct {
	identity fileIdentity
	dataset  domain.Dataset
	warnings []domain.Warning
	loadedAt time.Time
}

// CachedLoader guarda o dataset já derivado de cada arquivo, indexado pelo caminho
// absoluto. A entrada vale enquanto o tamanho e a data de modificação do arquivo
// não mudarem, ou até ser invalidada. Os datasets retornados são compartilhados
// e não devem ser alterados.
type CachedLoader struct {
	loader  DatasetLoader
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

func NewCachedLoader(loader DatasetLoader) *CachedLoader {
	return &CachedLoader{
		loader:  loader,
		entries: make(map[string]*cacheEntry),
	}
}

// Load retorna o dataset derivado do arquivo, lendo do disco apenas quando necessário
func (c *CachedLoader) Load(path string) (domain.Dataset, error) {
	key, identity, err := identify(path)
	if err != nil {
		return domain.Dataset{}, err
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && entry.identity == identity {
		return entry.dataset, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Outra goroutine pode ter carregado enquanto esperávamos o lock
	if entry, ok := c.entries[key]; ok && entry.identity == identity {
		return entry.dataset, nil
	}

	raw, err := c.loader.Load(path)
	if err != nil {
		return domain.Dataset{}, err
	}

	derived, warnings := deriving.Derive(raw)
	c.entries[key] = &cacheEntry{
		identity: identity,
		dataset:  derived,
		warnings: warnings,
		loadedAt: time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"path":              key,
		"rows":              derived.Len(),
		"undefined_metrics": len(warnings),
	}).Info("Dataset armazenado em cache")

	return derived, nil
}

// Warnings retorna os avisos gerados na derivação do dataset em cache
func (c *CachedLoader) Warnings(path string) []domain.Warning {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.entries[key]; ok {
		return entry.warnings
	}
	return nil
}

// Invalidate descarta a entrada do arquivo
func (c *CachedLoader) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll descarta todas as entradas
func (c *CachedLoader) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Stale indica se o arquivo mudou desde o último carregamento ou ainda não foi carregado
func (c *CachedLoader) Stale(path string) (bool, error) {
	key, identity, err := identify(path)
	if err != nil {
		return true, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return true, nil
	}
	return entry.identity != identity, nil
}

// LoadedAt retorna quando o arquivo foi carregado pela última vez
func (c *CachedLoader) LoadedAt(path string) (time.Time, bool) {
	key, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.entries[key]; ok {
		return entry.loadedAt, true
	}
	return time.Time{}, false
}

func identify(path string) (string, fileIdentity, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return "", fileIdentity{}, errors.Wrapf(err, "caminho inválido %s", path)
	}

	info, err := os.Stat(key)
	if err != nil {
		return "", fileIdentity{}, ioError(path, err)
	}

	return key, fileIdentity{size: info.Size(), modTime: info.ModTime()}, nil
}
