package quire_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

// Example_basic creates a note in a fresh store and lists the favorites.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "quire-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	svc, err := quire.New(ctx, tmpDir, quire.WithSeed(false))
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	note, err := svc.Create(ctx, quire.Draft{
		Title:    "Weekly sync",
		Content:  "Moved grooming to Thursdays.",
		Tags:     quire.ParseTags("Team, meeting"),
		Priority: "medium",
		Category: "meeting",
	})
	if err != nil {
		log.Fatal(err)
	}

	if _, err := svc.ToggleFavorite(ctx, note.ID); err != nil {
		log.Fatal(err)
	}

	fav := true
	svc.SetFilters(core.Filters{IsFavorite: &fav})
	for _, n := range svc.Visible() {
		fmt.Println(n.Title, n.Tags)
	}
	// Output:
	// Weekly sync [team meeting]
}

// ExampleValidate shows the messages returned for an incomplete draft.
func ExampleValidate() {
	msgs := quire.Validate(quire.Draft{Content: "x", Priority: "high", Category: "bug"})
	fmt.Println(msgs)
	// Output:
	// [Title is required]
}
