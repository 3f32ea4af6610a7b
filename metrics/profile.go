package metrics

// Device classes used to pick font sizes.
type DeviceClass uint8

const (
	Desktop DeviceClass = iota
	Mobile
)

func (self DeviceClass) String() string {
	switch self {
	case Desktop:
		return "Desktop"
	case Mobile:
		return "Mobile"
	default:
		panic("invalid DeviceClass")
	}
}

// Font sizing rules for a single device class.
//
// The hero font size grows linearly with the viewport width
// (width * HeroScale) but never leaves [HeroMin, HeroMax]. The
// header state uses fixed values.
type Class struct {
	HeroScale      float64 // font px per viewport px
	HeroMin        float64 // px
	HeroMax        float64 // px
	HeaderFontSize float64 // px
	HeaderSpacing  float64 // em
}

// Returns the hero font size for the given viewport width.
func (self Class) HeroFontSize(viewportWidth float64) float64 {
	if !(viewportWidth > 0) {
		return self.HeroMin
	}
	return Clamp(viewportWidth*self.HeroScale, self.HeroMin, self.HeroMax)
}

// A pair of device classes and the breakpoint between them.
type Profile struct {
	Breakpoint     float64
	CharWidthRatio float64
	Desktop        Class
	Mobile         Class
}

// Returns the default profile: 140px hero text on a 1920px desktop
// shrinking down to 96px, 50px hero text on a 375px phone shrinking
// down to 36px, and 30px / 20px header text.
func DefaultProfile() Profile {
	return Profile{
		Breakpoint:     DefaultBreakpoint,
		CharWidthRatio: DefaultCharWidthRatio,
		Desktop: Class{
			HeroScale:      140.0 / 1920.0,
			HeroMin:        96,
			HeroMax:        140,
			HeaderFontSize: 30,
			HeaderSpacing:  0.15,
		},
		Mobile: Class{
			HeroScale:      50.0 / 375.0,
			HeroMin:        36,
			HeroMax:        50,
			HeaderFontSize: 20,
			HeaderSpacing:  0.12,
		},
	}
}

// Returns the device class for the given viewport width.
func (self Profile) ClassFor(viewportWidth float64) DeviceClass {
	if viewportWidth < self.Breakpoint {
		return Mobile
	}
	return Desktop
}

// Returns the sizing rules for the given device class.
func (self Profile) Rules(class DeviceClass) Class {
	if class == Mobile {
		return self.Mobile
	}
	return self.Desktop
}

// Hero and header metrics for a label at a given viewport width.
type Metrics struct {
	Class          DeviceClass
	HeroFontSize   float64 // px
	HeroSpacing    float64 // em
	HeaderFontSize float64 // px
	HeaderSpacing  float64 // em
}

// Computes the wordmark metrics for the given viewport width. The
// hero spacing is chosen so the label spans targetFraction of the
// viewport width.
func (self Profile) Compute(viewportWidth float64, label string, targetFraction float64) Metrics {
	class := self.ClassFor(viewportWidth)
	rules := self.Rules(class)
	ratio := self.CharWidthRatio
	if !(ratio > 0) {
		ratio = DefaultCharWidthRatio
	}

	heroSize := rules.HeroFontSize(viewportWidth)
	return Metrics{
		Class:          class,
		HeroFontSize:   heroSize,
		HeroSpacing:    LetterSpacing(viewportWidth, heroSize, targetFraction, CharCount(label), ratio),
		HeaderFontSize: rules.HeaderFontSize,
		HeaderSpacing:  rules.HeaderSpacing,
	}
}
