// Package assets finds files under an asset root and turns them into renderer
// resources.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spaghettifunk/prism/engine/core"
)

var (
	ErrUnsupportedAsset = errors.New("unsupported asset type")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrNotHeld          = errors.New("released a resource that is not held")
)

type Kind int

const (
	KindNone Kind = iota
	KindImage
	KindShader
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindShader:
		return "shader"
	case KindFont:
		return "font"
	}
	return "none"
}

// KindOf classifies a path by its extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
		return KindImage
	case ".glsl":
		return KindShader
	case ".fnt":
		return KindFont
	default:
		return KindNone
	}
}

type AssetInfo struct {
	Path      string
	Kind      Kind
	Size      int64
	IndexedAt time.Time
}

// Manager indexes the files below a root directory. Paths handed to it are
// relative to that root and use forward slashes.
type Manager struct {
	root   string
	assets map[string]AssetInfo
	mutex  sync.RWMutex
}

func NewManager(root string) *Manager {
	return &Manager{
		root:   root,
		assets: make(map[string]AssetInfo),
	}
}

func (am *Manager) Root() string {
	return am.root
}

// Scan walks the root and indexes every file of a known kind. Files of other
// kinds are skipped.
func (am *Manager) Scan() error {
	found := make(map[string]AssetInfo)
	err := filepath.WalkDir(am.root, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind := KindOf(walkPath)
		if kind == KindNone {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(am.root, walkPath)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		found[rel] = AssetInfo{Path: rel, Kind: kind, Size: info.Size(), IndexedAt: time.Now()}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", am.root, err)
	}

	am.mutex.Lock()
	am.assets = found
	am.mutex.Unlock()
	core.LogDebug("indexed %d assets under %s", len(found), am.root)
	return nil
}

func (am *Manager) Lookup(rel string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[rel]
	return info, ok
}

// List returns the indexed paths of one kind in lexical order.
func (am *Manager) List(kind Kind) []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	var out []string
	for p, info := range am.assets {
		if info.Kind == kind {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Resolve maps rel to a filesystem path after checking that it exists and is
// of the wanted kind. Files added after the last Scan are still found.
func (am *Manager) Resolve(rel string, want Kind) (string, error) {
	if kind := KindOf(rel); kind != want {
		return "", fmt.Errorf("%w: %s is %s, want %s", ErrUnsupportedAsset, rel, kind, want)
	}
	full := filepath.Join(am.root, filepath.FromSlash(rel))
	if _, ok := am.Lookup(rel); ok {
		return full, nil
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, rel)
	}
	am.mutex.Lock()
	am.assets[rel] = AssetInfo{Path: rel, Kind: want, Size: info.Size(), IndexedAt: time.Now()}
	am.mutex.Unlock()
	return full, nil
}
