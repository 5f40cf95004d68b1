package domain

// ObjectKind — вид размещенного объекта.
type ObjectKind uint8

const (
	ObjectChest ObjectKind = iota
	ObjectTrap
	ObjectNPC
	ObjectRoomEvent
	ObjectSecretRoom
)

// TrapType — разновидность ловушки (полезная нагрузка ObjectTrap).
type TrapType uint8

const (
	TrapSpikes TrapType = iota
	TrapPoison
	TrapFrost
)

// EventKind — разновидность комнатного события (полезная нагрузка ObjectRoomEvent).
type EventKind uint8

const (
	EventShrine EventKind = iota
	EventFountain
	EventAltar
)

// PlacedObject — объект, размещенный генератором на клетке этажа.
// Создается при генерации, помечается Consumed при взаимодействии,
// никогда не переезжает; сбрасывается при регенерации этажа.
type PlacedObject struct {
	Kind     ObjectKind
	Pos      Position
	Consumed bool

	// Нагрузка по варианту. Используется только поле своего Kind.
	Trap   TrapType // ObjectTrap
	Opened bool     // ObjectChest
	Gold   int      // ObjectChest / ObjectSecretRoom
	Event  EventKind // ObjectRoomEvent
}

func (k ObjectKind) String() string {
	switch k {
	case ObjectChest:
		return "chest"
	case ObjectTrap:
		return "trap"
	case ObjectNPC:
		return "npc"
	case ObjectRoomEvent:
		return "room_event"
	case ObjectSecretRoom:
		return "secret_room"
	}
	return "unknown"
}
