package dungeon

import (
	"math"
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

const blobSamples = 24 // полярные сэмплы через 15°

// blobRoom — "круглая" комната, заданная центром и 24 радиусами границы.
type blobRoom struct {
	cx, cy int
	radii  [blobSamples]float64
}

// carveBlobRooms — комнаты-кляксы: 2 + sqrt(area)/4 комнат, граница каждой
// задана полярными сэмплами с радиус-фактором [0.5, 1.3], центры соединены
// цепочкой извилистых коридоров.
func carveBlobRooms(g *domain.Grid, rng *rand.Rand) {
	area := g.Width * g.Height
	roomCount := 2 + int(math.Sqrt(float64(area))/4)

	rooms := make([]blobRoom, 0, roomCount)
	for i := 0; i < roomCount; i++ {
		baseSize := 3.0 + rng.Float64()*3.0
		margin := int(baseSize*1.3) + 1

		if g.Width-2*margin <= 0 || g.Height-2*margin <= 0 {
			continue
		}

		room := blobRoom{
			cx: margin + rng.Intn(g.Width-2*margin),
			cy: margin + rng.Intn(g.Height-2*margin),
		}
		for s := 0; s < blobSamples; s++ {
			room.radii[s] = baseSize * (0.5 + rng.Float64()*0.8)
		}

		carveBlob(g, room)
		rooms = append(rooms, room)
	}

	// Цепочка: каждая комната соединяется с предыдущей
	for i := 1; i < len(rooms); i++ {
		from := domain.Position{X: rooms[i-1].cx, Y: rooms[i-1].cy}
		to := domain.Position{X: rooms[i].cx, Y: rooms[i].cy}
		carveWindingCorridor(g, from, to, rng)
	}
}

// carveBlob вырезает клетки, чей радиус не превышает границу комнаты
// на их угле. Граница ищется по угловой корзине с линейной интерполяцией
// между соседними сэмплами — не полноценный полигон-тест.
func carveBlob(g *domain.Grid, room blobRoom) {
	maxR := 0.0
	for _, r := range room.radii {
		if r > maxR {
			maxR = r
		}
	}
	bound := int(maxR) + 1

	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			x, y := room.cx+dx, room.cy+dy
			if !g.InBounds(x, y, 1) {
				continue
			}

			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist <= room.boundaryAt(math.Atan2(float64(dy), float64(dx))) {
				g.SetTile(x, y, domain.TileFloor)
			}
		}
	}
}

// boundaryAt возвращает интерполированный радиус границы на данном угле.
func (r blobRoom) boundaryAt(angle float64) float64 {
	if angle < 0 {
		angle += 2 * math.Pi
	}
	step := 2 * math.Pi / blobSamples
	bucket := int(angle / step)
	if bucket >= blobSamples {
		bucket = blobSamples - 1
	}
	next := (bucket + 1) % blobSamples
	t := angle/step - float64(bucket)
	return r.radii[bucket]*(1-t) + r.radii[next]*t
}
