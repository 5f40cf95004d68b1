package domain

// TileType — закрытое перечисление типов клеток.
// Ровно одно значение на клетку; объектные тайлы взаимоисключающие
// между собой и со стеной.
type TileType uint8

const (
	TileFloor TileType = iota
	TileWall
	TileChest
	TileTrap
	TileNPC
	TileSecret
	TileShrine
	TileFountain
	TileAltar
	TileExit
)

// Walkable — проходима ли клетка (все, кроме стены).
func (t TileType) Walkable() bool {
	return t != TileWall
}

// IsObject — true для объектных тайлов (не пол и не стена).
func (t TileType) IsObject() bool {
	return t != TileFloor && t != TileWall
}

func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileChest:
		return "chest"
	case TileTrap:
		return "trap"
	case TileNPC:
		return "npc"
	case TileSecret:
		return "secret"
	case TileShrine:
		return "shrine"
	case TileFountain:
		return "fountain"
	case TileAltar:
		return "altar"
	case TileExit:
		return "exit"
	}
	return "unknown"
}

// Symbol — символ для рендерера (клиент рисует сам, это подсказка).
func (t TileType) Symbol() string {
	switch t {
	case TileWall:
		return "#"
	case TileChest:
		return "$"
	case TileTrap:
		return "^"
	case TileNPC:
		return "M"
	case TileSecret:
		return "?"
	case TileShrine:
		return "+"
	case TileFountain:
		return "~"
	case TileAltar:
		return "&"
	case TileExit:
		return ">"
	}
	return "."
}
