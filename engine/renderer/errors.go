package renderer

import "errors"

var (
	ErrNotRecording        = errors.New("renderer: submission outside of a begin/end span")
	ErrAlreadyRecording    = errors.New("renderer: begin called while already recording")
	ErrSpanOverlap         = errors.New("renderer: begin called while another renderer's span is open")
	ErrNotInitialized      = errors.New("renderer: not initialized")
	ErrInvalidMaterial     = errors.New("renderer: invalid material")
	ErrInvalidSubTexture   = errors.New("renderer: invalid sub-texture")
	ErrInvalidGeometry     = errors.New("renderer: invalid geometry")
	ErrUniformTypeMismatch = errors.New("renderer: uniform type mismatch")
	ErrUnknownUniform      = errors.New("renderer: unknown uniform")
	ErrNilUniformView      = errors.New("renderer: uniform view points to nothing")
	ErrNilShader           = errors.New("renderer: nil shader")
)
