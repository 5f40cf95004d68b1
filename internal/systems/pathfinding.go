package systems

import (
	"container/heap"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// pathNode — элемент открытого множества A*.
type pathNode struct {
	pos    domain.Position
	g      int // стоимость от старта
	f      int // g + эвристика
	seq    int // порядок вставки, разрешает ничьи по f
	parent *pathNode
	index  int // индекс в куче
}

// openSet реализует heap.Interface. Min-куча по f;
// при равном f побеждает раньше вставленный узел — простой
// неканонический тай-брейк, стабильность кратчайшего пути не обещается.
type openSet []*pathNode

func (os openSet) Len() int { return len(os) }

func (os openSet) Less(i, j int) bool {
	if os[i].f != os[j].f {
		return os[i].f < os[j].f
	}
	return os[i].seq < os[j].seq
}

func (os openSet) Swap(i, j int) {
	os[i], os[j] = os[j], os[i]
	os[i].index = i
	os[j].index = j
}

func (os *openSet) Push(x interface{}) {
	n := len(*os)
	node := x.(*pathNode)
	node.index = n
	*os = append(*os, node)
}

func (os *openSet) Pop() interface{} {
	old := *os
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*os = old[0 : n-1]
	return node
}

// FindPath — A* по 4-связной решетке с манхэттенской эвристикой и
// единичной стоимостью шага. Стены и выход за границы непроходимы.
// Путь НЕ включает старт и включает цель; пустой результат означает
// "цель недостижима на этом тике", а не ошибку.
func FindPath(g *domain.Grid, start, goal domain.Position) []domain.Position {
	if start == goal {
		return nil
	}
	if !g.IsWalkable(goal.X, goal.Y) || !g.IsWalkable(start.X, start.Y) {
		return nil
	}

	open := &openSet{}
	heap.Init(open)

	seq := 0
	startNode := &pathNode{pos: start, g: 0, f: start.ManhattanTo(goal), seq: seq}
	heap.Push(open, startNode)

	bestG := map[int]int{g.Index(start.X, start.Y): 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)

		if current.pos == goal {
			return reconstructPath(current)
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := current.pos.X+d[0], current.pos.Y+d[1]
			if !g.IsWalkable(nx, ny) {
				continue
			}

			ng := current.g + 1
			idx := g.Index(nx, ny)
			if prev, seen := bestG[idx]; seen && prev <= ng {
				continue
			}
			bestG[idx] = ng

			seq++
			next := domain.Position{X: nx, Y: ny}
			heap.Push(open, &pathNode{
				pos:    next,
				g:      ng,
				f:      ng + next.ManhattanTo(goal),
				seq:    seq,
				parent: current,
			})
		}
	}

	return nil // недостижимо
}

// reconstructPath разворачивает цепочку родителей в путь без старта.
func reconstructPath(node *pathNode) []domain.Position {
	var reversed []domain.Position
	for n := node; n.parent != nil; n = n.parent {
		reversed = append(reversed, n.pos)
	}

	path := make([]domain.Position, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
