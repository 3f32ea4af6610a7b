package scrollfx

import "github.com/hajimehoshi/ebiten/v2"

// Quick alias to the control key, commonly used to toggle debug
// overlays from [Game].Update().
const Ctrl = ebiten.KeyControl
