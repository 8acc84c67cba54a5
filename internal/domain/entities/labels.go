package entities

// Effect is a lighting effect a Razer LED can run.
type Effect int

const (
	EffectOff Effect = iota
	EffectOn
	EffectStatic
	EffectBreathing
	EffectBreathingDual
	EffectBreathingRandom
	EffectBlinking
	EffectSpectrum
	EffectWave
	EffectWheel
	EffectReactive
	EffectRipple
	EffectRippleRandom
)

// Capability describes what an effect needs to be programmed.
type Capability struct {
	Effect    Effect
	Label     string
	NumColors int
	Wave      bool
}

var effects = []Capability{
	{EffectOff, "Off", 0, false},
	{EffectOn, "On", 0, false},
	{EffectStatic, "Static", 1, false},
	{EffectBreathing, "Breathing", 1, false},
	{EffectBreathingDual, "Breathing Dual", 2, false},
	{EffectBreathingRandom, "Breathing Random", 0, false},
	{EffectBlinking, "Blinking", 1, false},
	{EffectSpectrum, "Spectrum", 0, false},
	{EffectWave, "Wave", 0, true},
	{EffectWheel, "Wheel", 0, false},
	{EffectReactive, "Reactive", 1, false},
	{EffectRipple, "Ripple", 1, false},
	{EffectRippleRandom, "Ripple Random", 0, false},
}

// Effects lists every known effect with its capability.
func Effects() []Capability {
	return append([]Capability(nil), effects...)
}

// Capability returns the capability of e. Unknown effects report ok=false.
func (e Effect) Capability() (Capability, bool) {
	if e < 0 || int(e) >= len(effects) {
		return Capability{}, false
	}
	return effects[e], true
}

func (e Effect) Label() string {
	c, ok := e.Capability()
	if !ok {
		return ""
	}
	return c.Label
}

// LedID is the OpenRazer identifier of an LED zone.
type LedID uint8

const (
	LedUnspecified    LedID = 0x00
	LedScrollWheel    LedID = 0x01
	LedBattery        LedID = 0x03
	LedLogo           LedID = 0x04
	LedBacklight      LedID = 0x05
	LedMacroRecording LedID = 0x07
	LedGameMode       LedID = 0x08
	LedKeymapRed      LedID = 0x0C
	LedKeymapGreen    LedID = 0x0D
	LedKeymapBlue     LedID = 0x0E
	LedRightSide      LedID = 0x10
	LedLeftSide       LedID = 0x11
)

var ledIDs = []LedID{
	LedUnspecified,
	LedScrollWheel,
	LedBattery,
	LedLogo,
	LedBacklight,
	LedMacroRecording,
	LedGameMode,
	LedKeymapRed,
	LedKeymapGreen,
	LedKeymapBlue,
	LedRightSide,
	LedLeftSide,
}

var ledLabels = map[LedID]string{
	LedUnspecified:    "Unspecified",
	LedScrollWheel:    "Scroll Wheel",
	LedBattery:        "Battery",
	LedLogo:           "Logo",
	LedBacklight:      "Backlight",
	LedMacroRecording: "Macro Recording",
	LedGameMode:       "Game Mode",
	LedKeymapRed:      "Keymap Red",
	LedKeymapGreen:    "Keymap Green",
	LedKeymapBlue:     "Keymap Blue",
	LedRightSide:      "Right Side",
	LedLeftSide:       "Left Side",
}

func LedIDs() []LedID {
	return append([]LedID(nil), ledIDs...)
}

// Label returns the source string of the zone. Ids the daemon may report but
// we do not know render as "Unspecified".
func (id LedID) Label() string {
	if l, ok := ledLabels[id]; ok {
		return l
	}
	return ledLabels[LedUnspecified]
}

type ChargingState int

const (
	Charging ChargingState = iota
	FastCharging
	FullyCharged
)

var chargingLabels = []string{
	Charging:     "Charging",
	FastCharging: "Fast Charging",
	FullyCharged: "Fully Charged",
}

func ChargingStates() []ChargingState {
	return []ChargingState{Charging, FastCharging, FullyCharged}
}

func (s ChargingState) Label() string {
	if s < 0 || int(s) >= len(chargingLabels) {
		return ""
	}
	return chargingLabels[s]
}

// SourceCatalog builds the English catalog every lookup is checked against.
// The strings are their own translations.
func SourceCatalog() *Catalog {
	c := NewCatalog(SourceLanguage)
	c.Context = "libopenrazer"
	var labels []string
	for _, e := range effects {
		labels = append(labels, e.Label)
	}
	for _, id := range ledIDs {
		labels = append(labels, ledLabels[id])
	}
	labels = append(labels, chargingLabels...)
	for _, l := range labels {
		// labels are unique, Add cannot fail
		_ = c.Add(Entry{Source: l, Translation: l})
	}
	return c
}
