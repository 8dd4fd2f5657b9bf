package touchline

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// layoutColor is the YAML shape of a chip color.
type layoutColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// layoutChip is the YAML shape of one chip.
type layoutChip struct {
	ID    string      `yaml:"id"`
	Kind  string      `yaml:"kind"`
	X     float64     `yaml:"x"`
	Y     float64     `yaml:"y"`
	Color layoutColor `yaml:"color"`
	Label string      `yaml:"label,omitempty"`
}

// boardLayout is the top-level YAML structure for a saved board.
type boardLayout struct {
	Name  string       `yaml:"name,omitempty"`
	Chips []layoutChip `yaml:"chips"`
}

// SaveLayout writes a named board layout as YAML. Chip positions are stored
// in board-percent coordinates, so a layout renders the same at any
// container size.
func SaveLayout(w io.Writer, name string, chips []Chip) error {
	layout := boardLayout{Name: name}
	for _, c := range chips {
		layout.Chips = append(layout.Chips, layoutChip{
			ID:   c.ID,
			Kind: c.Kind.String(),
			X:    c.X,
			Y:    c.Y,
			Color: layoutColor{
				R: uint8(clamp01(c.Color.R) * 255),
				G: uint8(clamp01(c.Color.G) * 255),
				B: uint8(clamp01(c.Color.B) * 255),
				A: uint8(clamp01(c.Color.A) * 255),
			},
			Label: c.Label,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&layout); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}

// LoadLayout reads a board layout from YAML. Chips with an unrecognized kind
// are dropped, empty IDs are backfilled with generated ones, and positions
// are pulled back into the 0-100 range.
func LoadLayout(r io.Reader) (name string, chips []Chip, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read layout: %w", err)
	}
	var layout boardLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return "", nil, fmt.Errorf("parse layout: %w", err)
	}

	for _, lc := range layout.Chips {
		kind, ok := parseChipKind(lc.Kind)
		if !ok {
			debugf("layout: dropping chip %q with unknown kind %q", lc.ID, lc.Kind)
			continue
		}
		id := lc.ID
		if id == "" {
			id = nextChipID()
		}
		chips = append(chips, Chip{
			ID:   id,
			Kind: kind,
			X:    clampRange(lc.X, 0, 100),
			Y:    clampRange(lc.Y, 0, 100),
			Color: Color{
				R: float64(lc.Color.R) / 255,
				G: float64(lc.Color.G) / 255,
				B: float64(lc.Color.B) / 255,
				A: float64(lc.Color.A) / 255,
			},
			Label: lc.Label,
		})
	}
	return layout.Name, chips, nil
}

// SaveLayoutFile writes a board layout to a YAML file.
func SaveLayoutFile(path, name string, chips []Chip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := SaveLayout(f, name, chips); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadLayoutFile reads a board layout from a YAML file.
func LoadLayoutFile(path string) (name string, chips []Chip, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return LoadLayout(f)
}

// parseChipKind maps a saved kind string back to a ChipKind. An empty string
// reads as a player chip for layouts saved before kinds existed.
func parseChipKind(s string) (ChipKind, bool) {
	switch s {
	case "player", "":
		return ChipPlayer, true
	case "ball":
		return ChipBall, true
	default:
		return 0, false
	}
}

// chipIDCounter backs nextChipID. The engines run on the game loop
// goroutine, so a plain counter is enough.
var chipIDCounter int

func nextChipID() string {
	chipIDCounter++
	return fmt.Sprintf("chip-%d", chipIDCounter)
}

// FormationNames lists the built-in formation presets, in cycling order.
func FormationNames() []string {
	return []string{"4-4-2", "4-3-3", "3-5-2", "4-2-3-1"}
}

// FormationChips lays out a full eleven in the named formation plus the
// ball at the center spot, all in board-percent coordinates. The name is a
// dash-separated line count like "4-4-2"; any spelling whose lines sum to
// ten works. Returns false for anything else.
//
// The keeper sits on its own at the bottom of the board; outfield lines are
// spread evenly from defense (y=75) up to attack (y=30), and players within
// a line are spread evenly across the width. Shirt numbers run 1-11 in
// layout order.
func FormationChips(name string, team Color) ([]Chip, bool) {
	lines, ok := parseFormation(name)
	if !ok {
		return nil, false
	}

	chips := make([]Chip, 0, 12)
	chips = append(chips, Chip{
		ID: "p1", Kind: ChipPlayer, X: 50, Y: 92, Color: team, Label: "1",
	})

	const (
		defenseY = 75.0
		attackY  = 30.0
	)
	number := 2
	for i, count := range lines {
		y := defenseY
		if len(lines) > 1 {
			y = defenseY - float64(i)*(defenseY-attackY)/float64(len(lines)-1)
		}
		for j := 0; j < count; j++ {
			x := 100 * float64(j+1) / float64(count+1)
			chips = append(chips, Chip{
				ID:    fmt.Sprintf("p%d", number),
				Kind:  ChipPlayer,
				X:     x,
				Y:     y,
				Color: team,
				Label: strconv.Itoa(number),
			})
			number++
		}
	}

	chips = append(chips, Chip{
		ID: "ball", Kind: ChipBall, X: 50, Y: 50, Color: ColorWhite,
	})
	return chips, true
}

// parseFormation splits a name like "4-4-2" into outfield line counts.
// Valid formations have 1-5 players per line and ten outfielders total.
func parseFormation(name string) ([]int, bool) {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return nil, false
	}
	lines := make([]int, 0, len(parts))
	sum := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 5 {
			return nil, false
		}
		lines = append(lines, n)
		sum += n
	}
	if sum != 10 {
		return nil, false
	}
	return lines, true
}
