package assets

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/renderer"
)

type reference[T any] struct {
	resource T
	count    uint64
}

// Library shares device resources by asset path. Each Acquire must be paired
// with a Release; the resource is destroyed when the last holder releases it.
type Library struct {
	manager *Manager
	device  renderer.Device

	mutex    sync.Mutex
	textures map[string]*reference[renderer.Texture]
	shaders  map[string]*reference[renderer.Shader]
}

func NewLibrary(manager *Manager, device renderer.Device) *Library {
	return &Library{
		manager:  manager,
		device:   device,
		textures: make(map[string]*reference[renderer.Texture]),
		shaders:  make(map[string]*reference[renderer.Shader]),
	}
}

func (l *Library) AcquireTexture(rel string) (renderer.Texture, error) {
	return acquire(l, l.textures, rel, KindImage, func(path string) (renderer.Texture, error) {
		return LoadTexture(l.device, path)
	})
}

func (l *Library) ReleaseTexture(rel string) error {
	return release(l, l.textures, rel, func(t renderer.Texture) { t.Destroy() })
}

func (l *Library) AcquireShader(rel string) (renderer.Shader, error) {
	return acquire(l, l.shaders, rel, KindShader, func(path string) (renderer.Shader, error) {
		return LoadShader(l.device, path)
	})
}

func (l *Library) ReleaseShader(rel string) error {
	return release(l, l.shaders, rel, func(s renderer.Shader) { s.Destroy() })
}

// References reports how many holders share the resource at rel.
func (l *Library) References(rel string) uint64 {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if ref, ok := l.textures[rel]; ok {
		return ref.count
	}
	if ref, ok := l.shaders[rel]; ok {
		return ref.count
	}
	return 0
}

// Shutdown destroys everything still held, whatever the counts.
func (l *Library) Shutdown() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for rel, ref := range l.textures {
		core.LogWarn("texture '%s' still has %d references at shutdown", rel, ref.count)
		ref.resource.Destroy()
	}
	for rel, ref := range l.shaders {
		core.LogWarn("shader '%s' still has %d references at shutdown", rel, ref.count)
		ref.resource.Destroy()
	}
	clear(l.textures)
	clear(l.shaders)
}

func acquire[T any](l *Library, table map[string]*reference[T], rel string, kind Kind, load func(string) (T, error)) (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if ref, ok := table[rel]; ok {
		ref.count++
		return ref.resource, nil
	}

	var zero T
	path, err := l.manager.Resolve(rel, kind)
	if err != nil {
		return zero, err
	}
	resource, err := load(path)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", rel, err)
	}
	table[rel] = &reference[T]{resource: resource, count: 1}
	core.LogDebug("loaded %s '%s'", kind, rel)
	return resource, nil
}

func release[T any](l *Library, table map[string]*reference[T], rel string, destroy func(T)) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	ref, ok := table[rel]
	if !ok {
		core.LogWarn("tried to release non-existent resource '%s'", rel)
		return fmt.Errorf("%w: %s", ErrNotHeld, rel)
	}
	ref.count--
	if ref.count == 0 {
		destroy(ref.resource)
		delete(table, rel)
		core.LogDebug("released '%s', reference count reached 0", rel)
	}
	return nil
}
