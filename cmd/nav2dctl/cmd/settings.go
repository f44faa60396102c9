package cmd

// Settings holds the build-wide defaults a scene file doesn't override.
//
// Modelled on sample/solomesh.Settings/NewSettings: a plain struct of
// float/int knobs with a constructor prefilling the values nav2d ships
// with out of the box.
type Settings struct {
	AgentRadius float32
	Accuracy    int64

	WorldMinX, WorldMinY float32
	WorldMaxX, WorldMaxY float32
}

// NewSettings returns Settings filled with nav2d's defaults: Accuracy 100
// (two decimal digits, §6.2's "common default"), a zero agent radius, and
// a generous 1000x1000 world.
func NewSettings() Settings {
	return Settings{
		AgentRadius: 0,
		Accuracy:    100,
		WorldMinX:   -500,
		WorldMinY:   -500,
		WorldMaxX:   500,
		WorldMaxY:   500,
	}
}
