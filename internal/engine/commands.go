package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/internal/systems"
)

// CommandKind — вид команды игрока.
type CommandKind uint8

const (
	CmdUseSkill CommandKind = iota
	CmdDodge
	CmdSetSpeed
)

// Command — единица ввода игрока. Сетевой слой кладет их в очередь,
// симуляция применяет пачкой в начале тика, между тиками состояние
// никто не трогает.
type Command struct {
	Kind    CommandKind
	SkillID string
	Dx, Dy  int
	Speed   float64
}

// drainCommands применяет все накопленные команды.
func (g *Game) drainCommands() {
	for {
		select {
		case cmd := <-g.commands:
			g.applyCommand(cmd)
		default:
			return
		}
	}
}

func (g *Game) applyCommand(cmd Command) {
	switch cmd.Kind {
	case CmdUseSkill:
		g.useSkill(cmd.SkillID)
	case CmdDodge:
		g.dodge(cmd.Dx, cmd.Dy)
	case CmdSetSpeed:
		g.setSpeed(cmd.Speed)
	}
}

// useSkill — активные навыки с кулдаунами.
func (g *Game) useSkill(id string) {
	p := g.rs.Player
	if !p.Alive() {
		return
	}
	if cd, ok := p.Cooldowns[id]; ok && cd > 0 {
		return
	}

	switch id {
	case "power_strike":
		targets := systems.MonstersInRange(g.rs, p.Class.AttackRange, 1)
		if len(targets) == 0 {
			return
		}
		p.Cooldowns[id] = 8
		result := systems.ResolveAttackScaled(&p.Agent, targets[0], 2.0, g.rs.Rng)
		if !result.Evaded {
			g.addLog(fmt.Sprintf("Мощный удар: %d урона по %s",
				result.Damage, targets[0].Name), "COMBAT")
		}
		if result.Killed {
			g.onMonsterKilled(targets[0])
		}

	case "battle_heal":
		p.Cooldowns[id] = 15
		heal := p.Stats.MaxHP * 3 / 10
		p.Heal(heal)
		g.addLog(fmt.Sprintf("Боевое лечение: +%d HP", heal), "INFO")

	case "stone_shield":
		p.Cooldowns[id] = 20
		p.Shield += p.Stats.MaxHP / 4
		g.addLog("Каменный щит поднят", "INFO")

	default:
		logrus.WithField("skill", id).Warn("Неизвестный навык")
	}
}

// dodge — рывок в сторону с короткой неуязвимостью через уклонение.
func (g *Game) dodge(dx, dy int) {
	p := g.rs.Player
	if !p.Alive() || p.DodgeCD > 0 {
		return
	}

	if dx == 0 && dy == 0 {
		dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		d := dirs[g.rs.Rng.Intn(4)]
		dx, dy = d[0], d[1]
	}

	// До двух клеток в выбранном направлении, насколько пускает карта
	for step := 0; step < 2; step++ {
		nx, ny := p.Pos.X+dx, p.Pos.Y+dy
		if g.rs.IsBlocked(nx, ny, &p.Agent) {
			break
		}
		p.Pos = domain.Position{X: nx, Y: ny}
	}
	p.Path = nil
	g.interactAt(p.Pos)

	p.DodgeCD = 5
	p.AddBuff(domain.TimedBuff{
		Stage: domain.ModifierStage{
			Name:    "dodge_roll",
			Op:      domain.ModifierAdd,
			Evasion: 30,
		},
		Remaining: 2,
	})
	g.recomputePlayerStats()
	g.addLog("Кувырок!", "INFO")
}

// setSpeed меняет множитель игрового времени (только 1/2/5).
func (g *Game) setSpeed(mult float64) {
	switch mult {
	case 1, 2, 5:
		g.speedMult = mult
		logrus.WithField("speed", mult).Info("Скорость симуляции изменена")
	default:
		logrus.WithField("speed", mult).Warn("Недопустимый множитель скорости")
	}
}
