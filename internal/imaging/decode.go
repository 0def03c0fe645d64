package imaging

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
)

// Decoded is the outcome of one decode attempt. Exactly one of Image and
// Err is set.
type Decoded struct {
	Image *image.RGBA
	Err   error
}

// DecodeAll decodes every blob concurrently and returns only when every
// attempt has resolved, success or failure. Slot i of the result belongs
// to blobs[i]. A failed slot never blocks the others.
func DecodeAll(ctx context.Context, blobs [][]byte, workers int) []Decoded {
	out := make([]Decoded, len(blobs))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, blob := range blobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Decoded{Err: err}
				return nil
			}
			img, err := DecodePNG(blob)
			out[i] = Decoded{Image: img, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
