package dungeon

import (
	"math/rand"
	"testing"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

func TestGenerateConnectivity(t *testing.T) {
	// Этажи 1..12 покрывают все три алгоритма по несколько раз
	for floor := 1; floor <= 12; floor++ {
		rng := rand.New(rand.NewSource(int64(floor) * 1000))
		result := Generate(floor, rng)
		g := result.Grid

		if g.Width < domain.MinSize || g.Width > domain.MaxSize {
			t.Errorf("Floor %d: width %d out of [%d, %d]", floor, g.Width, domain.MinSize, domain.MaxSize)
		}
		if g.Height < domain.MinSize || g.Height > domain.MaxSize {
			t.Errorf("Floor %d: height %d out of [%d, %d]", floor, g.Height, domain.MinSize, domain.MaxSize)
		}

		regions := floodRegions(g)
		if len(regions) != 1 {
			t.Errorf("Floor %d: expected exactly 1 floor region, got %d", floor, len(regions))
		}
		if len(regions) > 0 && len(regions[0]) < 10 {
			t.Errorf("Floor %d: suspiciously small floor area: %d cells", floor, len(regions[0]))
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	for floor := 1; floor <= 3; floor++ {
		rng := rand.New(rand.NewSource(42))
		g := Generate(floor, rng).Grid

		for x := 0; x < g.Width; x++ {
			if g.Tiles[0][x].Walkable() || g.Tiles[g.Height-1][x].Walkable() {
				t.Fatalf("Floor %d: border row is walkable at x=%d", floor, x)
			}
		}
		for y := 0; y < g.Height; y++ {
			if g.Tiles[y][0].Walkable() || g.Tiles[y][g.Width-1].Walkable() {
				t.Fatalf("Floor %d: border column is walkable at y=%d", floor, y)
			}
		}
	}
}

func TestGenerateObjectsOnFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	result := Generate(5, rng)

	seen := make(map[domain.Position]bool)
	for _, o := range result.Objects {
		if !result.Grid.IsWalkable(o.Pos.X, o.Pos.Y) {
			t.Errorf("Object %s placed on a wall at [%d,%d]", o.Kind, o.Pos.X, o.Pos.Y)
		}
		if seen[o.Pos] {
			t.Errorf("Two objects share cell [%d,%d]", o.Pos.X, o.Pos.Y)
		}
		seen[o.Pos] = true
	}
}

func TestFloorSizeGrowth(t *testing.T) {
	// Средний размер должен монотонно расти с номером этажа
	avg := func(floor int) float64 {
		total := 0
		for i := 0; i < 50; i++ {
			rng := rand.New(rand.NewSource(int64(floor*100 + i)))
			w, h := floorSize(floor, rng)
			total += w + h
		}
		return float64(total) / 50
	}

	small, big := avg(1), avg(30)
	if big <= small {
		t.Errorf("Expected floor 30 to be larger on average: floor1=%f floor30=%f", small, big)
	}
}

func TestRepairConnectivityMergesRegions(t *testing.T) {
	g := domain.NewGrid(30, 30)
	// Две изолированные комнаты по углам
	for y := 2; y <= 5; y++ {
		for x := 2; x <= 5; x++ {
			g.SetTile(x, y, domain.TileFloor)
		}
	}
	for y := 24; y <= 27; y++ {
		for x := 24; x <= 27; x++ {
			g.SetTile(x, y, domain.TileFloor)
		}
	}

	rng := rand.New(rand.NewSource(1))
	repairConnectivity(g, rng)

	if regions := floodRegions(g); len(regions) != 1 {
		t.Errorf("Expected 1 region after repair, got %d", len(regions))
	}
}

func TestRepairConnectivityEmptyGrid(t *testing.T) {
	g := domain.NewGrid(30, 30)
	rng := rand.New(rand.NewSource(1))
	repairConnectivity(g, rng)

	regions := floodRegions(g)
	if len(regions) != 1 {
		t.Fatalf("Expected fallback room to create 1 region, got %d", len(regions))
	}
	// Запасная комната — 5x5
	if len(regions[0]) != 25 {
		t.Errorf("Expected 25 fallback cells, got %d", len(regions[0]))
	}
}

func TestCleanupRemovesNoise(t *testing.T) {
	g := domain.NewGrid(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			g.SetTile(x, y, domain.TileFloor)
		}
	}
	// Одинокая стена посреди зала
	g.SetTile(5, 5, domain.TileWall)

	cleanup(g)

	if g.Tiles[5][5] != domain.TileFloor {
		t.Error("Lone wall surrounded by floor should become floor")
	}
}

func TestPickTemplateRespectsMinFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		tpl := PickTemplate(1, rng)
		if tpl.MinFloor > 1 {
			t.Fatalf("Template %s with MinFloor %d picked on floor 1", tpl.Name, tpl.MinFloor)
		}
	}
}

func TestSpawnMonsterScaling(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pos := domain.Position{X: 1, Y: 1}

	low := Slime.SpawnMonster(pos, 1, rng)
	high := Slime.SpawnMonster(pos, 10, rng)

	if high.Stats.MaxHP <= low.Stats.MaxHP {
		t.Error("Expected HP to scale with floor")
	}
	if high.Stats.Attack <= low.Stats.Attack {
		t.Error("Expected attack to scale with floor")
	}
	if high.HP != high.Stats.MaxHP {
		t.Error("Monster should spawn at full HP")
	}
	if low.ID == high.ID {
		t.Error("Monster IDs should be unique")
	}
}
