package hollow

import (
	"github.com/brianvoe/gofakeit/v6"
)

// Limits for randomly generated hollows.
const (
	MinTreasures      = 10
	MaxTreasures      = 20
	MaxTreasureValue  = 100
	MaxTreasureWeight = 100
)

// Generator produces random treasure lists for new hollows.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a generator seeded with seed. A zero seed picks a
// random one.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Treasures returns between MinTreasures and MaxTreasures treasures with
// weights in [1, MaxTreasureWeight] and values in [1, MaxTreasureValue].
func (g *Generator) Treasures() []Treasure {
	n := g.faker.Number(MinTreasures, MaxTreasures)
	treasures := make([]Treasure, n)
	for i := range treasures {
		treasures[i] = Treasure{
			Name:   g.faker.Adjective() + " " + g.faker.Noun(),
			Weight: g.faker.Number(1, MaxTreasureWeight),
			Value:  g.faker.Number(1, MaxTreasureValue),
		}
	}
	return treasures
}
