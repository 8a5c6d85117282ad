package video

import (
	"github.com/ignite-laboratories/centurion"
	"github.com/veandco/go-sdl2/img"
)

// LoadSurface decodes any image format supported by SDL_image into a surface.
func LoadSurface(path string) (*Surface, error) {
	ptr, err := img.Load(path)
	return adoptSurface(centurion.IMG, ptr, err)
}

// LoadTexture decodes an image straight into a texture owned by renderer.
func LoadTexture(renderer *Renderer, path string) (*Texture, error) {
	ptr, err := img.LoadTexture(renderer.Get(), path)
	return adoptTexture(centurion.IMG, ptr, err)
}

// SavePNG writes the surface as a PNG file.
func (s *Surface) SavePNG(path string) error {
	return centurion.Wrap(centurion.IMG, img.SavePNG(s.Get(), path))
}
