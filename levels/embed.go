package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// DefaultName is loaded when no level is requested.
const DefaultName = "meadow"

// Level is static layout data: it is read once to build the world and never
// changed afterwards.
type Level struct {
	Name      string         `yaml:"name"`
	Lives     int            `yaml:"lives"`
	Spawn     mgl64.Vec3     `yaml:"spawn"`
	Platforms []Platform     `yaml:"platforms"`
	Enemies   []EnemySpawn   `yaml:"enemies"`
	Coins     []CoinSpawn    `yaml:"coins"`
	CoinField *CoinField     `yaml:"coin_field,omitempty"`
	PowerUps  []PowerUpSpawn `yaml:"powerups"`
}

type Platform struct {
	Name   string     `yaml:"name"`
	Center mgl64.Vec3 `yaml:"center"`
	Size   mgl64.Vec3 `yaml:"size"`
}

// EnemySpawn is one patrol route. Zero speed or damage falls back to the
// enemy prefab.
type EnemySpawn struct {
	Start  mgl64.Vec3 `yaml:"start"`
	End    mgl64.Vec3 `yaml:"end"`
	Speed  float64    `yaml:"speed,omitempty"`
	Damage int        `yaml:"damage,omitempty"`
}

type CoinSpawn struct {
	Position mgl64.Vec3 `yaml:"position"`
	Value    int        `yaml:"value,omitempty"`
}

// CoinField scatters Count coins uniformly inside [Min, Max] using a fixed
// seed, so the same level always lays out the same coins.
type CoinField struct {
	Count int        `yaml:"count"`
	Seed  uint64     `yaml:"seed"`
	Min   mgl64.Vec3 `yaml:"min"`
	Max   mgl64.Vec3 `yaml:"max"`
}

type PowerUpSpawn struct {
	Kind     string     `yaml:"kind"`
	Position mgl64.Vec3 `yaml:"position"`
}

// Load reads a level by base name, trying a file on disk first and the
// embedded levels second.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultName
	}
	data, err := os.ReadFile(name)
	if err != nil {
		file := strings.TrimSuffix(name, ".yaml") + ".yaml"
		data, err = fs.ReadFile(LevelsFS, file)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive", ErrInvalidLevel)
	}
	for i, p := range l.Platforms {
		if p.Size.X() <= 0 || p.Size.Y() <= 0 || p.Size.Z() <= 0 {
			return fmt.Errorf("%w: platform %d (%s) has no volume", ErrInvalidLevel, i, p.Name)
		}
	}
	for i, e := range l.Enemies {
		if e.Start.ApproxEqual(e.End) {
			return fmt.Errorf("%w: enemy %d patrol route has no length", ErrInvalidLevel, i)
		}
	}
	if f := l.CoinField; f != nil {
		if f.Count < 0 {
			return fmt.Errorf("%w: coin_field count is negative", ErrInvalidLevel)
		}
		for axis := 0; axis < 3; axis++ {
			if f.Min[axis] > f.Max[axis] {
				return fmt.Errorf("%w: coin_field min exceeds max on axis %d", ErrInvalidLevel, axis)
			}
		}
	}
	for i, p := range l.PowerUps {
		if p.Kind == "" {
			return fmt.Errorf("%w: powerup %d has no kind", ErrInvalidLevel, i)
		}
	}
	return nil
}
