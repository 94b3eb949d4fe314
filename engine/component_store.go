package engine

import (
	"github.com/lixenwraith/vi-pong/component"
)

// ComponentStore holds one typed store per component kind
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Sprite    *Store[component.SpriteComponent]
	Name      *Store[component.NameComponent]

	Ball   *Store[component.BallComponent]
	Paddle *Store[component.PaddleComponent]
	Score  *Store[component.ScoreComponent]
	Wall   *Store[component.WallComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Sprite:    NewStore[component.SpriteComponent](),
		Name:      NewStore[component.NameComponent](),
		Ball:      NewStore[component.BallComponent](),
		Paddle:    NewStore[component.PaddleComponent](),
		Score:     NewStore[component.ScoreComponent](),
		Wall:      NewStore[component.WallComponent](),
	}
}

// all lists every store for uniform entity cleanup
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Transform,
		c.Sprite,
		c.Name,
		c.Ball,
		c.Paddle,
		c.Score,
		c.Wall,
	}
}
