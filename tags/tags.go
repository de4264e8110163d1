package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Arena     = donburi.NewTag().SetName("Arena")
	Clock     = donburi.NewTag().SetName("Clock")
)

// Resolv tags for arena collision
const (
	ResolvSolid     = "solid"     // Blocks lateral movement
	ResolvGround    = "ground"    // Can be stood on
	ResolvRamp      = "ramp"      // Ground whose surface height varies
	ResolvPlatform  = "platform"  // Ground moved by a tween
	ResolvTrigger   = "trigger"   // Overlap-only volume
	ResolvCharacter = "character" // Character footprint
	ResolvProbe     = "probe"     // Scratch object for sphere queries
)
