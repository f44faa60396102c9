package cmd

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/nav2d"
)

// ShapeSpec authors one NavElement: either an explicit polygon (Points
// set) or a radius, synthesising a hexagon (§4.7). Cost only applies to
// entries under Scene.Surfaces.
type ShapeSpec struct {
	Points      [][2]float32 `yaml:"points,omitempty"`
	Radius      float32      `yaml:"radius,omitempty"`
	Position    [2]float32   `yaml:"position"`
	Rotation    float32      `yaml:"rotation,omitempty"`
	Cost        float32      `yaml:"cost,omitempty"`
	ExtraOffset float32      `yaml:"extra_offset,omitempty"`
}

// Scene is the YAML-authored input `build` consumes: a world rectangle,
// the pipeline's agent radius and coordinate accuracy, and its obstacles
// and surfaces.
type Scene struct {
	AgentRadius float32 `yaml:"agent_radius"`
	Accuracy    int64   `yaml:"accuracy"`
	World       struct {
		Min [2]float32 `yaml:"min"`
		Max [2]float32 `yaml:"max"`
	} `yaml:"world"`
	Obstacles []ShapeSpec `yaml:"obstacles"`
	Surfaces  []ShapeSpec `yaml:"surfaces"`
}

// DefaultScene returns a small scene (Settings' default world, one
// obstacle, one surface) used to prefill `nav2dctl config`.
func DefaultScene() *Scene {
	s := NewSettings()
	scene := &Scene{
		AgentRadius: s.AgentRadius,
		Accuracy:    s.Accuracy,
	}
	scene.World.Min = [2]float32{s.WorldMinX, s.WorldMinY}
	scene.World.Max = [2]float32{s.WorldMaxX, s.WorldMaxY}
	scene.Obstacles = []ShapeSpec{{Radius: 1, Position: [2]float32{0, 0}}}
	scene.Surfaces = []ShapeSpec{{
		Points:   [][2]float32{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}},
		Position: [2]float32{0, 0},
		Cost:     1,
	}}
	return scene
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes s to path in YAML.
func (s *Scene) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Build constructs a Nav2D from s and authors every configured shape, but
// does not call Update() — callers decide when to settle.
func (s *Scene) Build() (*nav2d.Nav2D, error) {
	min := geom.Vec2(s.World.Min[0], s.World.Min[1])
	max := geom.Vec2(s.World.Max[0], s.World.Max[1])
	n, err := nav2d.New(min, max, s.AgentRadius, geom.Accuracy(s.Accuracy))
	if err != nil {
		return nil, err
	}

	for _, o := range s.Obstacles {
		pos := geom.Vec2(o.Position[0], o.Position[1])
		if len(o.Points) > 0 {
			if _, err := n.AddObstacle(toVectors(o.Points), pos, o.Rotation, o.ExtraOffset); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := n.AddObstacleRadius(o.Radius, pos, o.ExtraOffset); err != nil {
			return nil, err
		}
	}

	for _, sf := range s.Surfaces {
		pos := geom.Vec2(sf.Position[0], sf.Position[1])
		if len(sf.Points) > 0 {
			if _, err := n.AddSurface(toVectors(sf.Points), pos, sf.Rotation, sf.Cost, sf.ExtraOffset); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := n.AddSurfaceRadius(sf.Radius, pos, sf.Cost, sf.ExtraOffset); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func toVectors(pts [][2]float32) []geom.Vector2 {
	out := make([]geom.Vector2, len(pts))
	for i, p := range pts {
		out[i] = geom.Vec2(p[0], p[1])
	}
	return out
}
