package gui

import (
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/tag"
)

// GLCapability is an OpenGL capability passed to Disable.
type GLCapability uint32

const (
	GLMultisample     GLCapability = 0x809D
	GLFramebufferSRGB GLCapability = 0x8DB9
)

// GLContext is the part of an OpenGL context the pipeline touches. Texture
// callbacks may leave it in any state; the pipeline restores the default
// framebuffer after each one.
type GLContext interface {
	BindFramebuffer(framebuffer uint32)
	Disable(capability GLCapability)
}

// resetGL rebinds the default framebuffer and disables sRGB conversion and
// multisampling.
func resetGL(gl GLContext) {
	gl.BindFramebuffer(0)
	gl.Disable(GLFramebufferSRGB)
	gl.Disable(GLMultisample)
}

type noGL struct{}

func (noGL) BindFramebuffer(uint32) {}
func (noGL) Disable(GLCapability)   {}

// GlTextureCache holds the textures the texture callbacks of one frame
// returned, per document and node.
type GlTextureCache struct {
	textures map[tag.DomId]map[dom.NodeId]*dom.Texture
}

func newGlTextureCache() *GlTextureCache {
	return &GlTextureCache{textures: map[tag.DomId]map[dom.NodeId]*dom.Texture{}}
}

func (c *GlTextureCache) add(d tag.DomId, n dom.NodeId, tex *dom.Texture) {
	m := c.textures[d]
	if m == nil {
		m = map[dom.NodeId]*dom.Texture{}
		c.textures[d] = m
	}
	m[n] = tex
}

// Get returns the texture of node n in document d.
func (c *GlTextureCache) Get(d tag.DomId, n dom.NodeId) (*dom.Texture, bool) {
	tex, ok := c.textures[d][n]
	return tex, ok
}

// Len returns the number of cached textures.
func (c *GlTextureCache) Len() int {
	n := 0
	for _, m := range c.textures {
		n += len(m)
	}
	return n
}

func (c *GlTextureCache) forDom(d tag.DomId) map[dom.NodeId]*dom.Texture {
	return c.textures[d]
}
