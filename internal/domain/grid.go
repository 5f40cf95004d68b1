package domain

import "fmt"

// Grid — тайловая матрица одного этажа.
// Владеет ею текущий этаж; при переходе заменяется целиком.
// Никакого скрытого состояния: вся мутация через SetTile.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]TileType
}

// NewGrid создает решетку, целиком заполненную стенами.
// Генератор потом вырезает в ней пол.
func NewGrid(width, height int) *Grid {
	tiles := make([][]TileType, height)
	for y := 0; y < height; y++ {
		row := make([]TileType, width)
		for x := 0; x < width; x++ {
			row[x] = TileWall
		}
		tiles[y] = row
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds проверяет, что точка лежит внутри решетки с отступом margin от края.
func (g *Grid) InBounds(x, y, margin int) bool {
	return x >= margin && x < g.Width-margin && y >= margin && y < g.Height-margin
}

// TileAt возвращает тип клетки. Выход за границы — нарушение контракта
// генератора, падаем сразу.
func (g *Grid) TileAt(x, y int) TileType {
	if !g.InBounds(x, y, 0) {
		panic(fmt.Sprintf("grid: TileAt(%d,%d) out of bounds %dx%d", x, y, g.Width, g.Height))
	}
	return g.Tiles[y][x]
}

// SetTile записывает тип клетки. Та же дисциплина границ, что и TileAt.
func (g *Grid) SetTile(x, y int, t TileType) {
	if !g.InBounds(x, y, 0) {
		panic(fmt.Sprintf("grid: SetTile(%d,%d) out of bounds %dx%d", x, y, g.Width, g.Height))
	}
	g.Tiles[y][x] = t
}

// IsWalkable — true, если клетка внутри решетки и не стена.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y, 0) {
		return false
	}
	return g.Tiles[y][x].Walkable()
}

// Index — линейный индекс клетки (для множеств посещенного).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// FloorCells возвращает все клетки пола (включая объектные тайлы).
func (g *Grid) FloorCells() []Position {
	var cells []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x].Walkable() {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}
