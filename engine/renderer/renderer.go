package renderer

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
)

/** @brief The default texture name. */
const DefaultTextureName string = "default"

// SpanGuard is shared by renderers drawing to one device so that at most one
// of them has a begin/end span open at a time.
type SpanGuard struct {
	owner string
}

func NewSpanGuard() *SpanGuard {
	return &SpanGuard{}
}

// Owner names the renderer holding the open span, or "" when none is.
func (g *SpanGuard) Owner() string {
	return g.owner
}

type recordingState uint8

const (
	stateReady recordingState = iota
	stateRecording
)

// Stats describes the most recent begin/end span.
type Stats struct {
	Submissions   int
	DrawCalls     int
	ShaderBinds   int
	UniformErrors int
}

// span is the begin/submit/end state machine shared by both renderers. It
// owns the snapshot of the scene-wide uniforms taken at begin.
type span struct {
	name     string
	state    recordingState
	uniforms []namedUniform
	stats    Stats
	guard    *SpanGuard
}

func newSpan(name string, guard *SpanGuard) span {
	if guard == nil {
		guard = NewSpanGuard()
	}
	return span{name: name, guard: guard}
}

func (s *span) beginSpan(uniforms *SceneWideUniforms) error {
	if s.state == stateRecording {
		return ErrAlreadyRecording
	}
	if owner := s.guard.owner; owner != "" {
		return fmt.Errorf("%w: %s", ErrSpanOverlap, owner)
	}
	s.guard.owner = s.name
	s.stats = Stats{}
	s.uniforms = s.uniforms[:0]
	uniforms.Each(func(name string, value UniformValue) {
		owned, err := Snapshot(value)
		if err != nil {
			core.LogError("%s: scene uniform %q skipped: %s", s.name, name, err)
			s.stats.UniformErrors++
			return
		}
		s.uniforms = append(s.uniforms, namedUniform{name: name, value: owned})
	})
	s.state = stateRecording
	return nil
}

func (s *span) checkRecording() error {
	if s.state != stateRecording {
		return ErrNotRecording
	}
	return nil
}

func (s *span) endSpan() error {
	if err := s.checkRecording(); err != nil {
		return err
	}
	s.release()
	return nil
}

// release closes the span, if open, without the End checks.
func (s *span) release() {
	if s.state == stateRecording && s.guard.owner == s.name {
		s.guard.owner = ""
	}
	s.state = stateReady
	s.uniforms = s.uniforms[:0]
}

func (s *span) bindShader(shader Shader) {
	shader.Bind()
	s.stats.ShaderBinds++
	for _, u := range s.uniforms {
		s.upload(shader, u.name, u.value)
	}
}

// upload reports a failed upload and moves on; the uniform keeps whatever
// value the shader had before.
func (s *span) upload(shader Shader, name string, value UniformValue) {
	if err := shader.UploadUniform(name, value); err != nil {
		core.LogError("%s: uniform %q on shader %q skipped: %s", s.name, name, shader.Name(), err)
		s.stats.UniformErrors++
	}
}

func (s *span) reportJoined(shader Shader, err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			s.reportJoined(shader, e)
		}
		return
	}
	core.LogError("%s: material uniform on shader %q skipped: %s", s.name, shader.Name(), err)
	s.stats.UniformErrors++
}

func createDefaultTexture(device Device) (Texture, error) {
	return device.CreateTexture(DefaultTextureName, 1, 1, []uint8{255, 255, 255, 255})
}
