package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/internal/systems"
	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
	"github.com/g1tyx/idle-dungeon-runner/pkg/dungeon"
	"github.com/g1tyx/idle-dungeon-runner/pkg/utils"
)

const maxLogEntries = 120

// Broadcaster — то, что умеет разослать снапшот подписчикам.
// Сетевой слой подставляет hub, тесты — заглушку.
type Broadcaster interface {
	Broadcast(resp *api.ServerResponse)
}

// Game — владелец состояния забега и единственный мутатор.
// Все изменения происходят в Update под мьютексом, сетевой
// слой шлет команды через канал и читает готовые снапшоты.
type Game struct {
	mu  sync.Mutex
	cfg *Config

	rs    *domain.RunState
	runID string

	commands  chan Command
	logs      []api.LogEntry
	speedMult float64
	gameOver  bool

	broadcaster Broadcaster
}

// NewGame создает забег: игрок выбранного класса, первый этаж,
// детерминированный ГСЧ от сида конфигурации.
func NewGame(cfg *Config) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := &Game{
		cfg:       cfg,
		runID:     utils.GenerateID(),
		commands:  make(chan Command, 32),
		speedMult: cfg.SpeedMult,
	}

	player := newPlayer(cfg.PlayerName, cfg.ClassName)
	g.rs = &domain.RunState{
		Floor:  1,
		Player: player,
		Phase:  domain.PhaseCombat,
		Rng:    rng,
	}

	g.generateFloor()
	g.rs.SpawnTimer = domain.SpawnDelay

	logrus.WithFields(logrus.Fields{
		"runId": g.runID,
		"seed":  cfg.Seed,
		"class": player.Class.Name,
	}).Info("Забег создан")

	g.addLog(fmt.Sprintf("%s спускается в подземелье...", player.Name), "INFO")
	return g
}

// SetBroadcaster подключает рассылку снапшотов. Вызывать до Run.
func (g *Game) SetBroadcaster(b Broadcaster) {
	g.broadcaster = b
}

// Submit ставит команду в очередь; применится на границе тика.
// При переполнении очереди команда молча отбрасывается.
func (g *Game) Submit(cmd Command) {
	select {
	case g.commands <- cmd:
	default:
	}
}

// Run крутит цикл симуляции до отмены контекста.
// Период тика фиксирован; множитель скорости растягивает
// игровое dt, а не частоту тиков.
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.TickPeriod)
	defer ticker.Stop()

	baseDt := g.cfg.TickPeriod.Seconds()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Цикл симуляции остановлен")
			return
		case <-ticker.C:
			g.mu.Lock()
			dt := baseDt * g.speedMult
			if !g.gameOver {
				g.Update(dt)
			}
			resp := g.buildResponse()
			g.mu.Unlock()

			if g.broadcaster != nil {
				g.broadcaster.Broadcast(resp)
			}
		}
	}
}

// Update продвигает симуляцию на dt игровых секунд.
// Порядок фаз тика фиксирован: команды, спавн, игрок,
// монстры, уборка трупов, прогрессия, часы.
func (g *Game) Update(dt float64) {
	g.drainCommands()

	if g.rs.SpawnTimer > 0 {
		g.rs.SpawnTimer -= dt
		if g.rs.SpawnTimer <= 0 {
			g.spawnWave()
		}
	}

	g.updatePlayer(dt)

	// Снимок списка: монстр, убитый раньше по циклу,
	// просто пропускается, слайс не мутируется на ходу
	snapshot := g.rs.Monsters
	for _, m := range snapshot {
		if !m.Alive() {
			continue
		}
		systems.UpdateMonster(g.rs, m, dt, g.rs.Rng)
		systems.TickEffects(m, dt)
		if !m.Alive() {
			g.onMonsterKilled(m)
		}
	}
	g.rs.RemoveDeadMonsters()

	g.updateProgression()

	g.rs.Clock += dt
}

// updatePlayer — автономное поведение игрока на тик.
func (g *Game) updatePlayer(dt float64) {
	p := g.rs.Player
	if !p.Alive() {
		g.handlePlayerDeath()
		return
	}

	if p.TickBuffs(dt) {
		g.recomputePlayerStats()
	}
	for id, cd := range p.Cooldowns {
		if cd > 0 {
			p.Cooldowns[id] = cd - dt
		}
	}
	if p.DodgeCD > 0 {
		p.DodgeCD -= dt
	}

	systems.TickEffects(&p.Agent, dt)
	if !p.Alive() {
		g.handlePlayerDeath()
		return
	}

	if systems.FrozenSkip(&p.Agent, g.rs.Rng) {
		return
	}

	target := systems.SelectPlayerTarget(g.rs)

	switch target.Kind {
	case systems.TargetMonster:
		if p.Pos.ManhattanTo(target.Pos) <= p.Class.AttackRange {
			g.playerAttack(dt)
			return
		}
	case systems.TargetExit, systems.TargetChest:
		// двигаемся, взаимодействие — при входе в клетку
	case systems.TargetNone:
		return
	}

	g.playerMove(dt, target.Pos)
}

// playerAttack — атака игрока с темпом AttackCadence.
// Класс определяет дальность и число целей; по вторичным
// целям урон идет с понижающим коэффициентом.
func (g *Game) playerAttack(dt float64) {
	p := g.rs.Player
	p.AttackTimer += dt * p.Stats.Speed
	if p.AttackTimer < domain.AttackCadence {
		return
	}
	p.AttackTimer = 0

	if systems.Stunned(&p.Agent) {
		return
	}

	targets := systems.MonstersInRange(g.rs, p.Class.AttackRange, p.Class.MaxTargets)
	scale := 1.0
	for i, m := range targets {
		if i > 0 {
			// Спад компаундится: третья цель получает falloff^2
			scale *= p.Class.Falloff
		}
		result := systems.ResolveAttackScaled(&p.Agent, m, scale, g.rs.Rng)
		if result.Evaded {
			g.addLog(fmt.Sprintf("%s уклоняется от удара", m.Name), "COMBAT")
			continue
		}
		if result.Crit {
			g.addLog(fmt.Sprintf("Крит! %d урона по %s", result.Damage, m.Name), "COMBAT")
		}
		if result.Killed {
			g.onMonsterKilled(m)
		}
	}
}

// playerMove — шаг к цели с темпом MoveCadence плюс
// взаимодействие с объектом в занятой клетке.
func (g *Game) playerMove(dt float64, target domain.Position) {
	p := g.rs.Player
	if p.Pos == target {
		// Уже стоим на цели (сундук под ногами) — шагать некуда
		g.interactAt(p.Pos)
		return
	}
	p.MoveTimer += dt * p.Stats.Speed
	if p.MoveTimer < domain.MoveCadence {
		return
	}
	p.MoveTimer = 0

	if !systems.StepToward(g.rs, &p.Agent, target) {
		return
	}
	g.interactAt(p.Pos)
}

// interactAt обрабатывает объект в клетке, куда встал игрок.
func (g *Game) interactAt(pos domain.Position) {
	obj := g.rs.ObjectAt(pos.X, pos.Y)
	if obj == nil || obj.Consumed {
		return
	}
	p := g.rs.Player

	switch obj.Kind {
	case domain.ObjectChest:
		if obj.Opened {
			return
		}
		obj.Opened = true
		obj.Consumed = true
		p.Gold += obj.Gold
		g.addLog(fmt.Sprintf("Сундук открыт: +%d золота", obj.Gold), "LOOT")

	case domain.ObjectTrap:
		obj.Consumed = true
		g.triggerTrap(obj)

	case domain.ObjectRoomEvent:
		obj.Consumed = true
		g.triggerEvent(obj)

	case domain.ObjectNPC:
		obj.Consumed = true
		heal := p.Stats.MaxHP / 10
		p.Heal(heal)
		g.addLog(fmt.Sprintf("Отшельник подлечивает: +%d HP", heal), "INFO")

	case domain.ObjectSecretRoom:
		obj.Consumed = true
		bonus := 20 + g.rs.Floor*10
		p.Gold += bonus
		g.addLog(fmt.Sprintf("Тайник! +%d золота", bonus), "LOOT")
	}

	// Клетка остается проходимой, но маркер с карты снимаем
	if obj.Consumed {
		g.rs.Grid.SetTile(pos.X, pos.Y, domain.TileFloor)
	}
}

// triggerTrap — эффект ловушки по ее типу.
func (g *Game) triggerTrap(obj *domain.PlacedObject) {
	p := g.rs.Player
	switch obj.Trap {
	case domain.TrapSpikes:
		dmg := 3 + g.rs.Floor
		p.TakeDamage(dmg)
		g.addLog(fmt.Sprintf("Шипы! -%d HP", dmg), "COMBAT")
	case domain.TrapPoison:
		p.ApplyEffect(domain.Poison(5.0, 0.02))
		g.addLog("Отравленная игла! Яд на 5 сек", "COMBAT")
	case domain.TrapFrost:
		p.ApplyEffect(domain.Freeze(3.0))
		g.addLog("Морозная руна! Заморозка на 3 сек", "COMBAT")
	}
	if !p.Alive() {
		g.handlePlayerDeath()
	}
}

// triggerEvent — комнатные события: святилище, фонтан, алтарь.
func (g *Game) triggerEvent(obj *domain.PlacedObject) {
	p := g.rs.Player
	switch obj.Event {
	case domain.EventShrine:
		p.AddBuff(domain.TimedBuff{
			Stage: domain.ModifierStage{
				Name:   "shrine_blessing",
				Op:     domain.ModifierMul,
				Attack: 0.15,
			},
			Remaining: 30,
		})
		g.recomputePlayerStats()
		g.addLog("Святилище благословляет: +15% атаки на 30 сек", "INFO")

	case domain.EventFountain:
		heal := p.Stats.MaxHP / 4
		p.Heal(heal)
		g.addLog(fmt.Sprintf("Фонтан восстанавливает %d HP", heal), "INFO")

	case domain.EventAltar:
		// Жертва крови: четверть текущего HP за постоянную атаку
		cost := p.HP / 4
		if cost < 1 {
			cost = 1
		}
		if p.HP <= cost {
			g.addLog("Алтарь требует больше крови, чем осталось", "INFO")
			return
		}
		p.HP -= cost
		p.Base.Attack += 2
		g.recomputePlayerStats()
		g.addLog(fmt.Sprintf("Алтарь принимает жертву: -%d HP, +2 атаки", cost), "INFO")
	}
}

// onMonsterKilled — награда за убийство и запись в лог.
func (g *Game) onMonsterKilled(m *domain.Agent) {
	p := g.rs.Player

	gold := 3 + g.rs.Floor + g.rs.Rng.Intn(5)
	xp := 5 + g.rs.Floor*2
	if m.IsElite {
		gold *= 2
		xp *= 2
	}
	if m.IsMiniBoss {
		gold *= 3
		xp *= 3
	}
	if m.IsBoss {
		gold *= 5
		xp *= 5
	}

	p.Gold += gold
	g.gainXP(xp)
	g.addLog(fmt.Sprintf("%s повержен: +%d золота", m.Name, gold), "COMBAT")
}

// gainXP — опыт и повышение уровня. Порог растет квадратично,
// уровень дает плоский прирост базовых статов.
func (g *Game) gainXP(xp int) {
	p := g.rs.Player
	p.XP += xp
	for p.XP >= xpThreshold(p.Level) {
		p.XP -= xpThreshold(p.Level)
		p.Level++
		p.Base.MaxHP += 8
		p.Base.Attack += 2
		p.Base.Defense++
		g.recomputePlayerStats()
		p.HP = p.Stats.MaxHP
		g.addLog(fmt.Sprintf("Уровень %d! Статы выросли, HP восстановлено", p.Level), "INFO")
	}
}

func xpThreshold(level int) int {
	return 20 + level*level*10
}

// recomputePlayerStats пересчитывает эффективные статы с нуля
// по базе и текущему списку стадий. HP клампится к новому максимуму.
func (g *Game) recomputePlayerStats() {
	p := g.rs.Player
	p.Stats = systems.ComputeStats(p.Base, p.ModifierStages())
	if p.HP > p.Stats.MaxHP {
		p.HP = p.Stats.MaxHP
	}
}

// handlePlayerDeath — возрождение за счет заряда либо конец забега.
// TakeDamage уже выставил Dead; возрождение снимает флаг.
func (g *Game) handlePlayerDeath() {
	p := g.rs.Player
	if g.gameOver {
		return
	}

	if p.ReviveCharges > 0 {
		p.ReviveCharges--
		p.Dead = false
		p.HP = p.Stats.MaxHP / 2
		p.Effects = nil
		if pos, ok := g.spawnCell(); ok {
			p.Pos = pos
		}
		g.addLog(fmt.Sprintf("%s восстает из мертвых! Зарядов осталось: %d",
			p.Name, p.ReviveCharges), "INFO")
		return
	}

	p.Dead = true
	g.gameOver = true
	logrus.WithFields(logrus.Fields{
		"runId": g.runID,
		"floor": g.rs.Floor,
		"level": p.Level,
		"gold":  p.Gold,
	}).Info("Забег окончен")
	g.addLog(fmt.Sprintf("%s погибает на этаже %d...", p.Name, g.rs.Floor), "ERROR")
}

// addLog добавляет запись в кольцевой игровой лог.
func (g *Game) addLog(text, kind string) {
	g.logs = append(g.logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      kind,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(g.logs) > maxLogEntries {
		g.logs = g.logs[len(g.logs)-maxLogEntries:]
	}
}

// generateFloor строит решетку текущего этажа и ставит игрока
// на случайную проходимую клетку.
func (g *Game) generateFloor() {
	result := dungeon.Generate(g.rs.Floor, g.rs.Rng)
	g.rs.Grid = result.Grid
	g.rs.Objects = result.Objects
	g.rs.Monsters = nil
	g.rs.ExitPos = nil
	g.rs.Phase = domain.PhaseCombat

	p := g.rs.Player
	p.Path = nil
	if pos, ok := g.spawnCell(); ok {
		p.Pos = pos
	}
}

// spawnCell подбирает проходимую клетку без объекта под ней:
// появление прямо на сундуке оставило бы его неоткрываемым.
func (g *Game) spawnCell() (domain.Position, bool) {
	for i := 0; i < 20; i++ {
		pos, ok := g.rs.RandomWalkableCell()
		if !ok {
			return domain.Position{}, false
		}
		if g.rs.ObjectAt(pos.X, pos.Y) == nil {
			return pos, true
		}
	}
	return g.rs.RandomWalkableCell()
}

// newPlayer — фабрика игрока по имени класса.
func newPlayer(name, className string) *domain.Player {
	class := domain.ClassWarrior
	base := domain.StatBlock{
		MaxHP:      80,
		Attack:     10,
		Defense:    5,
		Speed:      1.0,
		Evasion:    5,
		CritChance: 10,
		CritDamage: 150,
	}

	switch className {
	case "ranger":
		class = domain.ClassRanger
		base.MaxHP = 65
		base.Attack = 12
		base.Defense = 3
		base.Evasion = 12
		base.CritChance = 18
	case "mage":
		class = domain.ClassMage
		base.MaxHP = 55
		base.Attack = 14
		base.Defense = 2
		base.CritDamage = 175
	}

	p := &domain.Player{
		Agent: domain.Agent{
			ID:     "player",
			Name:   name,
			Symbol: "@",
			Stats:  base,
			HP:     base.MaxHP,
		},
		Class:         class,
		Level:         1,
		Base:          base,
		ReviveCharges: 1,
		Cooldowns:     make(map[string]float64),
	}
	return p
}
