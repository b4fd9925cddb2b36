package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"go-tank-battle/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// SpriteManager управляет загрузкой, кэшированием и выгрузкой спрайтов.
type SpriteManager struct {
	fsys     fs.FS
	newImage func(image.Image) *ebiten.Image
	sprites  map[string]component.Sprite
}

// NewSpriteManager создает менеджер, читающий файлы из fsys.
func NewSpriteManager(fsys fs.FS) *SpriteManager {
	return &SpriteManager{
		fsys:     fsys,
		newImage: ebiten.NewImageFromImage,
		sprites:  make(map[string]component.Sprite),
	}
}

// Load decodes the image at path (PNG, BMP or WebP) and returns it as a sprite.
// Successful loads are cached by path.
func (m *SpriteManager) Load(path string) (component.Sprite, error) {
	if sprite, ok := m.sprites[path]; ok {
		return sprite, nil
	}

	file, err := m.fsys.Open(path)
	if err != nil {
		return component.Sprite{}, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return component.Sprite{}, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}

	bounds := img.Bounds()
	sprite := component.Sprite{
		Image:  m.newImage(img),
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
	m.sprites[path] = sprite
	log.Printf("Successfully loaded sprite %s (%s, %dx%d)", path, format, bounds.Dx(), bounds.Dy())
	return sprite, nil
}

// Loaded возвращает количество спрайтов в кэше.
func (m *SpriteManager) Loaded() int {
	return len(m.sprites)
}

// Cleanup освобождает все загруженные текстуры.
func (m *SpriteManager) Cleanup() {
	for path, sprite := range m.sprites {
		if sprite.Image != nil {
			sprite.Image.Deallocate()
		}
		delete(m.sprites, path)
	}
	log.Println("All sprites unloaded.")
}
