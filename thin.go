package skeletrace

import "log/slog"

// Thin thins the image in place until fixpoint: it alternates Zhang–Suen
// sub-iterations 0 and 1, committing marked pixels between them, and
// terminates the first time a MARK phase sets no new markers. On return
// every byte of buf is 0 or 1 and no Zhang–Suen-reducible configuration
// remains.
//
// The image is partitioned into tileW x tileH tiles; a tile is skipped
// in a MARK phase iff it and all four of its orthogonal neighbors were
// unchanged by the previous MARK phase. Tile visitation is row-major,
// which does not affect the output since a MARK phase only reads
// foreground bits and writes marker bits.
func Thin(buf []byte, width, height, tileW, tileH int, opts ...ThinOption) error {
	if len(buf) != width*height {
		return ErrDimensionMismatch
	}
	if tileW <= 0 || tileH <= 0 {
		return ErrInvalidTile
	}

	o := defaultThinOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	grid := newTileGrid(width, height, tileW, tileH)
	grid.markAllChanged()

	for outer := 0; ; outer++ {
		changed0 := markPhase(buf, width, height, grid, 0)
		if !changed0 {
			log.Debug("thin converged", slog.Int("outer_iterations", outer), slog.Int("sub_iteration", 0))
			return nil
		}
		commitPhase(buf, width, height, grid)

		changed1 := markPhase(buf, width, height, grid, 1)
		if !changed1 {
			log.Debug("thin converged", slog.Int("outer_iterations", outer), slog.Int("sub_iteration", 1))
			return nil
		}
		commitPhase(buf, width, height, grid)

		log.Debug("thin outer iteration complete", slog.Int("outer_iteration", outer))
	}
}

// markPhase runs Zhang–Suen sub-iteration iter over every non-skipped
// tile in row-major order, updating each visited tile's CHANGED flag to
// whether that sub-iteration modified any of its pixels.
func markPhase(buf []byte, width, height int, grid *tileGrid, iter int) bool {
	snap := grid.snapshot()
	changedAny := false
	for ty := 0; ty < grid.rows; ty++ {
		for tx := 0; tx < grid.cols; tx++ {
			if grid.skip(snap, tx, ty) {
				continue
			}
			x, y, w, h := grid.rect(tx, ty, width, height)
			tileChanged := MarkSubIteration(buf, width, height, x, y, w, h, iter)
			grid.set(grid.index(tx, ty), tileChanged)
			changedAny = changedAny || tileChanged
		}
	}
	return changedAny
}

// commitPhase visits every tile whose CHANGED flag is currently set —
// exactly those the immediately preceding markPhase modified — and
// commits their marker bits.
func commitPhase(buf []byte, width, height int, grid *tileGrid) {
	for ty := 0; ty < grid.rows; ty++ {
		for tx := 0; tx < grid.cols; tx++ {
			idx := grid.index(tx, ty)
			if !grid.get(idx) {
				continue
			}
			x, y, w, h := grid.rect(tx, ty, width, height)
			Commit(buf, width, height, x, y, w, h)
		}
	}
}
