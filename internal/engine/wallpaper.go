package engine

import (
	"context"

	"dashline/internal/wallpaper"
)

// SetWallpaperFile encodes the image at path and makes it the wallpaper.
// A pick superseded by a newer one resolves without error.
func (s *Service) SetWallpaperFile(ctx context.Context, path string) error {
	res := <-s.picker.Pick(ctx, path)
	return res.Err
}

// Wallpaper returns the applied background, if one is set.
func (s *Service) Wallpaper() (wallpaper.Background, bool) {
	v, ok := s.wallpaper.Value()
	if !ok {
		return wallpaper.Background{}, false
	}
	return wallpaper.Cover(v), true
}
