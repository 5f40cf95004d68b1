package systems

import (
	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// StepToward делает один шаг агента к цели: сначала по кэшу пути,
// при недостижимости — жадный шаг по осям, иначе агент стоит на месте.
// Возвращает true, если агент сдвинулся.
func StepToward(rs *domain.RunState, a *domain.Agent, target domain.Position) bool {
	// Кэш пути невалиден, если пуст или следующий шаг заблокирован
	if len(a.Path) == 0 || rs.IsBlocked(a.Path[0].X, a.Path[0].Y, a) {
		a.Path = FindPath(rs.Grid, a.Pos, target)
	}

	if len(a.Path) > 0 {
		next := a.Path[0]
		if !rs.IsBlocked(next.X, next.Y, a) {
			a.Pos = next
			a.Path = a.Path[1:]
			return true
		}
		// Шаг перекрыт другим агентом — кэш сбрасываем, падаем в жадный шаг
		a.Path = nil
	}

	return greedyStep(rs, a, target)
}

// greedyStep — резервное движение без поиска пути: пробуем идеальный
// шаг по приоритетной оси, потом по второй. Если обе заперты — стоим.
func greedyStep(rs *domain.RunState, a *domain.Agent, target domain.Position) bool {
	dxRaw := target.X - a.Pos.X
	dyRaw := target.Y - a.Pos.Y

	stepX, stepY := a.Pos.DirectionTo(target)

	tryXFirst := abs(dxRaw) > abs(dyRaw)

	if tryXFirst {
		if stepX != 0 && !rs.IsBlocked(a.Pos.X+stepX, a.Pos.Y, a) {
			a.Pos = a.Pos.Shift(stepX, 0)
			return true
		}
		if stepY != 0 && !rs.IsBlocked(a.Pos.X, a.Pos.Y+stepY, a) {
			a.Pos = a.Pos.Shift(0, stepY)
			return true
		}
	} else {
		if stepY != 0 && !rs.IsBlocked(a.Pos.X, a.Pos.Y+stepY, a) {
			a.Pos = a.Pos.Shift(0, stepY)
			return true
		}
		if stepX != 0 && !rs.IsBlocked(a.Pos.X+stepX, a.Pos.Y, a) {
			a.Pos = a.Pos.Shift(stepX, 0)
			return true
		}
	}

	return false // тупик, пропускаем тик
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
