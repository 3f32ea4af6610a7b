package morph

// Default extra scroll distance past the threshold during which the
// (fully faded) wordmark is still considered visible.
const DefaultBand = 50.0

// Decides whether the morphing wordmark should be rendered at all.
// Gates never affect the interpolated values.
type Gate struct {
	Threshold float64 // px, usually the domain end
	Band      float64 // px past the threshold
}

// Returns a gate for the [0, threshold] domain with the default band.
func NewGate(threshold float64) Gate {
	return Gate{Threshold: threshold, Band: DefaultBand}
}

// Returns whether the wordmark should be rendered. Suppression
// (reduced motion, open menus, other routes...) always hides it.
func (self Gate) Visible(scroll float64, suppressed bool) bool {
	if suppressed {
		return false
	}
	return scroll <= self.Threshold+self.Band
}

// Returns whether the persistent header should show its own logo
// and solid background.
func (self Gate) HeaderSolid(scroll float64) bool {
	return scroll > self.Threshold
}
