package board

import (
	"math"
	"sort"
)

type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (r Rect) corners() [4][2]float64 {
	right := r.Left + r.Width
	bottom := r.Top + r.Height
	return [4][2]float64{
		{r.Left, r.Top},
		{right, r.Top},
		{r.Left, bottom},
		{right, bottom},
	}
}

type Droppable struct {
	Zone Zone
	Rect Rect
}

type Collision struct {
	Zone     Zone
	Distance float64
}

// cornerDistance - среднее расстояние между соответствующими углами
func cornerDistance(a, b Rect) float64 {
	ac, bc := a.corners(), b.corners()
	var sum float64
	for i := range ac {
		sum += math.Hypot(ac[i][0]-bc[i][0], ac[i][1]-bc[i][1])
	}
	return sum / 4
}

// RankCorners сортирует зоны по близости углов к перетаскиваемому прямоугольнику.
// При равном расстоянии сохраняется порядок droppables (порядок на доске).
func RankCorners(active Rect, droppables []Droppable) []Collision {
	collisions := make([]Collision, 0, len(droppables))
	for _, d := range droppables {
		collisions = append(collisions, Collision{Zone: d.Zone, Distance: cornerDistance(active, d.Rect)})
	}
	sort.SliceStable(collisions, func(i, j int) bool {
		return collisions[i].Distance < collisions[j].Distance
	})
	return collisions
}

// ClosestCorners возвращает ближайшую зону или nil, если зон нет.
// Собственная зона перетаскиваемого объекта пропускается.
func ClosestCorners(activeID string, active Rect, droppables []Droppable) *Zone {
	for _, c := range RankCorners(active, droppables) {
		if (c.Zone.Kind == ZoneTask || c.Zone.Kind == ZoneProject) && c.Zone.ID == activeID {
			continue
		}
		zone := c.Zone
		return &zone
	}
	return nil
}
