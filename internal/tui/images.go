package tui

import (
	"fmt"
	"image"

	"github.com/PabloGalante/lumina/internal/compare"
	"github.com/PabloGalante/lumina/internal/domain"
)

// imageCache keeps terminal-sized copies of the session images so frames
// only redo the composite.
type imageCache struct {
	key string

	beforeThumb, afterThumb *image.RGBA
}

func cacheKey(snap domain.SessionSnapshot, maxW, maxH int) string {
	var src, cur int
	if snap.SourceImage != nil {
		src = len(snap.SourceImage.Data)
	}
	if snap.CurrentImage != nil {
		cur = len(snap.CurrentImage.Data)
	}
	return fmt.Sprintf("%d/%d/%d/%d/%dx%d", snap.UpdatedAt.UnixNano(), len(snap.Messages), src, cur, maxW, maxH)
}

// update re-decodes when the session images or the pane size changed. Both
// thumbnails get the same size so the wipe lines up.
func (c *imageCache) update(snap domain.SessionSnapshot, maxW, maxH int) error {
	key := cacheKey(snap, maxW, maxH)
	if key == c.key {
		return nil
	}
	*c = imageCache{key: key}

	if snap.SourceImage == nil || maxW <= 0 || maxH <= 0 {
		return nil
	}

	before, err := snap.SourceImage.Decode()
	if err != nil {
		return err
	}
	w, h := compare.FitWithin(before, maxW, maxH)
	c.beforeThumb = compare.Thumbnail(before, w, h)

	if snap.CurrentImage == nil {
		return nil
	}
	after, err := snap.CurrentImage.Decode()
	if err != nil {
		return err
	}
	c.afterThumb = compare.Thumbnail(after, w, h)
	return nil
}

func (c imageCache) width() int {
	if c.beforeThumb == nil {
		return 0
	}
	return c.beforeThumb.Bounds().Dx()
}
