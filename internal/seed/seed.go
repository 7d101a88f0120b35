// Package seed provides the sample hobby catalog and a one-time population
// routine for demos and ad hoc testing. The catalog is static; the package
// holds no other state.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mkessler/hobby-tracker/internal/domain"
)

// HobbyCreator is the slice of the hobby service that Populate needs.
// Seeding goes through the same create operation as user input, so seeded
// records get generator-assigned ids, timestamps, and validation like any
// other record.
type HobbyCreator interface {
	List(ctx context.Context) ([]domain.Hobby, error)
	Create(ctx context.Context, in domain.NewHobby) (domain.Hobby, error)
}

// Catalog is the fixed set of sample hobbies, spanning every category.
var Catalog = []domain.NewHobby{
	{
		Title:       "Learn to Play Guitar",
		Description: "Master basic chords and learn to play 10 popular songs",
		Category:    "Music",
		Priority:    "High",
	},
	{
		Title:       "Morning Running",
		Description: "Run 3 miles every morning before work",
		Category:    "Sports",
		Priority:    "High",
		Completed:   true,
	},
	{
		Title:       "Watercolor Painting",
		Description: "Create a series of landscape paintings",
		Category:    "Art & Creative",
		Priority:    "Medium",
	},
	{
		Title:       `Read "The Great Gatsby"`,
		Description: "Finish reading this classic American novel",
		Category:    "Reading",
		Priority:    "Low",
	},
	{
		Title:       "Build a Mobile App",
		Description: "Learn React Native and build a hobby tracking app",
		Category:    "Technology",
		Priority:    "High",
	},
	{
		Title:       "Master French Baking",
		Description: "Learn to make croissants, éclairs, and macarons",
		Category:    "Cooking",
		Priority:    "Medium",
	},
	{
		Title:       "Plan Japan Trip",
		Description: "Research destinations, book hotels, and create itinerary",
		Category:    "Travel",
		Priority:    "Low",
		Completed:   true,
	},
	{
		Title:       "Pottery Classes",
		Description: "Take a 6-week pottery course at the local studio",
		Category:    "Art & Creative",
		Priority:    "Medium",
	},
	{
		Title:       "Write a Short Story",
		Description: "Write a 5000-word science fiction short story",
		Category:    "Art & Creative",
		Priority:    "Low",
	},
	{
		Title:       "Learn Spanish",
		Description: "Complete an online Spanish course and practice daily",
		Category:    "Other",
		Priority:    "Medium",
	},
	{
		Title:       "Swimming",
		Description: "Join a local swimming club and improve endurance",
		Category:    "Sports",
		Priority:    "Medium",
		Completed:   true,
	},
	{
		Title:       "Photography Portfolio",
		Description: "Build a professional photography portfolio with 50 photos",
		Category:    "Art & Creative",
		Priority:    "High",
	},
	{
		Title:       "Subscribe to Technology Blogs",
		Description: "Stay updated with latest tech trends and innovations",
		Category:    "Technology",
		Priority:    "Low",
		Completed:   true,
	},
	{
		Title:       "Meditation Practice",
		Description: "Meditate for 20 minutes every day for 30 days",
		Category:    "Other",
		Priority:    "High",
	},
}

// Populate inserts every catalog entry through svc and returns the number
// inserted. It is a no-op returning 0 when the repository already holds at
// least one record, so calling it on every startup is safe.
func Populate(ctx context.Context, svc HobbyCreator) (int, error) {
	existing, err := svc.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed.Populate: list: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	count := 0
	for _, entry := range Catalog {
		if _, err := svc.Create(ctx, entry); err != nil {
			return count, fmt.Errorf("seed.Populate: create %q: %w", entry.Title, err)
		}
		count++
	}
	return count, nil
}

// Random returns one catalog entry chosen uniformly at random.
func Random() domain.NewHobby {
	return Catalog[rand.IntN(len(Catalog))]
}
