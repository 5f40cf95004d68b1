package engine

import (
	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

// buildResponse собирает DTO-снимок текущего тика.
// Вызывается под мьютексом; наружу уходят только копии.
func (g *Game) buildResponse() *api.ServerResponse {
	rs := g.rs

	respType := "UPDATE"
	if g.gameOver {
		respType = "GAME_OVER"
	}

	resp := &api.ServerResponse{
		Type:  respType,
		Tick:  rs.Clock,
		Floor: rs.Floor,
		Phase: rs.Phase.String(),
		Grid:  &api.GridMeta{Width: rs.Grid.Width, Height: rs.Grid.Height},
	}

	resp.Tiles = make([]api.TileView, 0, rs.Grid.Width*rs.Grid.Height)
	for y := 0; y < rs.Grid.Height; y++ {
		for x := 0; x < rs.Grid.Width; x++ {
			t := rs.Grid.TileAt(x, y)
			resp.Tiles = append(resp.Tiles, api.TileView{
				X: x, Y: y,
				Type:   t.String(),
				Symbol: t.Symbol(),
				IsWall: t == domain.TileWall,
			})
		}
	}

	resp.Agents = append(resp.Agents, agentView(&rs.Player.Agent, true))
	for _, m := range rs.Monsters {
		if m.Alive() {
			resp.Agents = append(resp.Agents, agentView(m, false))
		}
	}

	for _, o := range rs.Objects {
		resp.Objects = append(resp.Objects, api.ObjectView{
			Kind:     o.Kind.String(),
			X:        o.Pos.X,
			Y:        o.Pos.Y,
			Consumed: o.Consumed,
			Opened:   o.Opened,
		})
	}

	resp.Logs = append(resp.Logs, g.logs...)
	return resp
}

func agentView(a *domain.Agent, isPlayer bool) api.AgentView {
	frac := 0.0
	if a.Stats.MaxHP > 0 {
		frac = float64(a.HP) / float64(a.Stats.MaxHP)
	}

	v := api.AgentView{
		ID:         a.ID,
		Name:       a.Name,
		Symbol:     a.Symbol,
		X:          a.Pos.X,
		Y:          a.Pos.Y,
		HP:         a.HP,
		MaxHP:      a.Stats.MaxHP,
		Shield:     a.Shield,
		HPFrac:     frac,
		State:      a.State.String(),
		IsPlayer:   isPlayer,
		IsBoss:     a.IsBoss,
		IsElite:    a.IsElite,
		IsMiniBoss: a.IsMiniBoss,
	}
	for _, e := range a.Effects {
		v.Effects = append(v.Effects, e.Kind.String())
	}
	return v
}

// Snapshot — потокобезопасный снимок для нового подписчика.
func (g *Game) Snapshot() *api.ServerResponse {
	g.mu.Lock()
	defer g.mu.Unlock()
	resp := g.buildResponse()
	resp.Type = "INIT"
	return resp
}

// RunSnapshot — плоское состояние забега для персистенции.
func (g *Game) RunSnapshot() *api.RunSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.rs.Player
	return &api.RunSnapshot{
		RunID:     g.runID,
		Seed:      g.cfg.Seed,
		Floor:     g.rs.Floor,
		Level:     p.Level,
		HP:        p.HP,
		MaxHP:     p.Stats.MaxHP,
		Gold:      p.Gold,
		Class:     p.Class.Name,
		Equipment: append([]string(nil), p.Equipment...),
		Inventory: append([]string(nil), p.Inventory...),
	}
}

// RunID — идентификатор текущего забега.
func (g *Game) RunID() string {
	return g.runID
}

// Stats возвращает сводку тика для периодики хранилища.
func (g *Game) Stats() (floor int, clock float64, monsters int, phase string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rs.Floor, g.rs.Clock, g.rs.AliveMonsters(), g.rs.Phase.String()
}
