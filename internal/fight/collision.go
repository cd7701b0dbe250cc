package fight

import "github.com/novakj/ringside/internal/physics"

// Colliding reports whether two fighters' bodies overlap on the horizontal
// axis. The test is symmetric in its arguments.
func Colliding(a, b *Fighter) bool {
	return physics.Gap(a.X.Peek(), b.X.Peek()) < Reach
}

// ResolvePush separates two overlapping fighters symmetrically around their
// midpoint so their gap equals exactly Reach. Left/right ordering is
// preserved; at identical positions a stays left.
func ResolvePush(a, b *Fighter) {
	ax, bx := a.X.Peek(), b.X.Peek()
	if physics.Gap(ax, bx) >= Reach {
		return
	}
	mid := (ax + bx) / 2
	if ax <= bx {
		a.X.Set(mid - Reach/2)
		b.X.Set(mid + Reach/2)
	} else {
		a.X.Set(mid + Reach/2)
		b.X.Set(mid - Reach/2)
	}
}
