package notes

import (
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// SampleNotes returns the collection seeded into an empty store on first load.
// Creation times are spread over the days before now so every sort option
// produces a visible difference.
func SampleNotes(now time.Time) []core.Note {
	day := 24 * time.Hour
	return []core.Note{
		New(now.Add(-2*time.Hour),
			WithTitle("Fix login redirect loop"),
			WithContent("Users land back on the login page after a successful sign-in when the session cookie is missing the path attribute."),
			WithTags("frontend", "auth", "urgent"),
			WithPriority(core.PriorityHigh),
			WithCategory(core.CategoryBug),
			WithFavorite(true),
		),
		New(now.Add(-1*day),
			WithTitle("Write release checklist"),
			WithContent("Collect the manual steps for cutting a release into a single checklist."),
			WithTags("docs", "release"),
			WithPriority(core.PriorityMedium),
			WithCategory(core.CategoryTask),
		),
		New(now.Add(-3*day),
			WithTitle("Notes on Go generics"),
			WithContent("Type parameters, constraints, and when an interface is still the better tool."),
			WithTags("go", "learning"),
			WithPriority(core.PriorityLow),
			WithCategory(core.CategoryLearning),
		),
		New(now.Add(-5*day),
			WithTitle("Weekly sync"),
			WithContent("Agreed to move the backlog grooming to Thursdays."),
			WithTags("team"),
			WithPriority(core.PriorityMedium),
			WithCategory(core.CategoryMeeting),
		),
		New(now.Add(-12*day),
			WithTitle("Onboarding feedback"),
			WithContent("New contributors found the setup guide too long; split it by platform."),
			WithTags("docs", "backend"),
			WithPriority(core.PriorityLow),
			WithCategory(core.CategoryFeedback),
		),
	}
}
