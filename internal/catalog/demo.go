package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/jaswdr/faker"
)

const defaultDemoCount = 24

var (
	demoPrices = []string{"¥15-25", "¥20-35", "¥30-50", "¥50-80", "¥80-120"}
	demoTags   = []string{"出餐快", "分量足", "性价比高", "环境好", "辣", "清淡", "适合聚餐", "一人食", "排队", "外卖"}
)

// DemoSource generates a synthetic catalog. A zero Seed draws from the clock.
type DemoSource struct {
	Count int
	Seed  int64
}

// Name implements Source.
func (s DemoSource) Name() string {
	return SourceDemo
}

// Fetch implements Source.
func (s DemoSource) Fetch(ctx context.Context) ([]model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateDemo(s.Count, s.Seed), nil
}

// GenerateDemo builds count fake restaurants spread over the known categories.
func GenerateDemo(count int, seed int64) []model.Restaurant {
	if count <= 0 {
		count = defaultDemoCount
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fake := faker.NewWithSeed(rand.NewSource(seed))
	categories := KnownCategories()

	restaurants := make([]model.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		category := fake.RandomStringElement(categories)
		restaurants = append(restaurants, model.Restaurant{
			ID:          i + 1,
			Name:        fmt.Sprintf("%s%s", fake.Company().Name(), category),
			Category:    category,
			Location:    fmt.Sprintf("%s, %s", fake.Address().StreetName(), fake.Address().City()),
			Price:       fake.RandomStringElement(demoPrices),
			Rating:      fake.Float64(1, 3, 5),
			WaitTime:    fmt.Sprintf("%d分钟", fake.IntBetween(5, 30)),
			Tags:        demoTagsFor(fake),
			Image:       Icon(category),
			Description: fake.Lorem().Sentence(8),
		})
	}
	return restaurants
}

func demoTagsFor(fake faker.Faker) []string {
	n := fake.IntBetween(1, 3)
	seen := make(map[string]bool, n)
	tags := make([]string, 0, n)
	for len(tags) < n {
		tag := fake.RandomStringElement(demoTags)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
