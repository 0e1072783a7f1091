package atlas

import (
	"math/rand"
	"sort"

	"github.com/piwi3910/atlaspack"
	"github.com/piwi3910/atlaspack/internal/model"
)

// GeneticConfig holds parameters for the genetic order optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// chromosome represents a candidate solution: a packing order over the
// sprite list, expressed as a permutation of indices.
type chromosome struct {
	order   []int
	fitness float64
}

// geneticOptimizer searches sprite orderings for a layout with a
// smaller atlas area than the default largest-first heuristic finds.
type geneticOptimizer struct {
	settings model.AtlasSettings
	config   GeneticConfig
	sprites  []model.Sprite
	rng      *rand.Rand
}

func newGeneticOptimizer(settings model.AtlasSettings, config GeneticConfig, sprites []model.Sprite, seed int64) *geneticOptimizer {
	return &geneticOptimizer{
		settings: settings,
		config:   config,
		sprites:  sprites,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// optimize runs the genetic algorithm and returns the best layout.
func (g *geneticOptimizer) optimize() (model.AtlasLayout, error) {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sort.Slice(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged
		eliteCount := min(g.config.EliteCount, len(population))
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}

	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
	return g.decode(population[0])
}

// initPopulation creates the initial random population, seeding one
// chromosome with the greedy largest-first order so the search starts
// from the heuristic baseline.
func (g *geneticOptimizer) initPopulation() []chromosome {
	n := len(g.sprites)
	population := make([]chromosome, g.config.PopulationSize)
	for i := range population {
		population[i] = chromosome{order: g.rng.Perm(n)}
	}
	if g.config.PopulationSize > 0 {
		population[0] = g.greedyChromosome()
	}
	return population
}

// greedyChromosome returns the indices sorted by area descending,
// mimicking the default packing order.
func (g *geneticOptimizer) greedyChromosome() chromosome {
	n := len(g.sprites)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai := g.sprites[order[i]].Width * g.sprites[order[i]].Height
		aj := g.sprites[order[j]].Width * g.sprites[order[j]].Height
		return ai > aj
	})
	return chromosome{order: order}
}

// evaluate computes the fitness of a chromosome by packing in its
// order and measuring area efficiency.
func (g *geneticOptimizer) evaluate(c chromosome) float64 {
	layout, err := g.decode(c)
	if err != nil || layout.TotalArea() == 0 {
		return 0
	}
	return float64(layout.UsedArea()) / float64(layout.TotalArea())
}

// decode packs the sprites in the chromosome's order.
func (g *geneticOptimizer) decode(c chromosome) (model.AtlasLayout, error) {
	ordered := make([]model.Sprite, len(c.order))
	for i, idx := range c.order {
		ordered[i] = g.sprites[idx]
	}
	return buildWithConfig(atlaspack.Config[int]{
		Spacing:       g.settings.Spacing,
		PowerOfTwo:    g.settings.PowerOfTwo,
		MinWidth:      g.settings.MinWidth,
		PreserveOrder: true,
	}, ordered)
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticOptimizer) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation
// chromosomes, preserving the relative order of genes from both
// parents.
func (g *geneticOptimizer) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.order)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{order: make([]int, n)}
	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.order[i] = parent1.order[i]
		inSegment[parent1.order[i]] = true
	}

	childIdx := (point2 + 1) % n
	for _, idx := range parent2.order {
		if !inSegment[idx] {
			child.order[childIdx] = idx
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

// mutate applies random mutations to a chromosome.
func (g *geneticOptimizer) mutate(c *chromosome) {
	n := len(c.order)
	if n < 2 {
		return
	}

	// Swap mutation
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.order[i], c.order[j] = c.order[j], c.order[i]
	}

	// Inversion mutation: reverse a segment (less frequent)
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.order[i], c.order[j] = c.order[j], c.order[i]
			i++
			j--
		}
	}
}

func (g *geneticOptimizer) copyChromosome(c chromosome) chromosome {
	order := make([]int, len(c.order))
	copy(order, c.order)
	return chromosome{order: order, fitness: c.fitness}
}

// OptimizeOrder runs the genetic order search and returns the best
// layout found. The search is seeded deterministically so repeated
// runs over the same input produce the same layout. For small inputs
// the heuristic order is usually already optimal and the search
// returns it unchanged.
func OptimizeOrder(settings model.AtlasSettings, sprites []model.Sprite) (model.AtlasLayout, error) {
	if len(sprites) == 0 {
		return Build(settings, sprites)
	}

	config := DefaultGeneticConfig()
	// Scale effort for larger inputs
	if len(sprites) > 20 {
		config.Generations = 150
	}
	if len(sprites) > 50 {
		config.Generations = 200
		config.PopulationSize = 80
	}

	ga := newGeneticOptimizer(settings, config, sprites, 42)
	best, err := ga.optimize()
	if err != nil {
		return model.AtlasLayout{}, err
	}

	// Never return something worse than the heuristic baseline.
	baseline, err := Build(settings, sprites)
	if err != nil {
		return model.AtlasLayout{}, err
	}
	if baseline.TotalArea() <= best.TotalArea() {
		return baseline, nil
	}
	return best, nil
}
