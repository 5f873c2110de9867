// Package quire is the composition root for Quire, a personal note keeper.
//
// It connects the note controller (pkg/service) with a storage adapter
// (pkg/adapters/fs, pkg/adapters/sqlite or pkg/adapters/memory) through the
// record store, which persists the whole collection as one blob.
//
// Usage:
//
//	svc, err := quire.New(ctx, ".",
//		quire.WithAdapter("fs"),
//		quire.WithLogger(logger),
//	)
//
//	note, err := svc.Create(ctx, core.Draft{
//		Title:    "Weekly sync",
//		Content:  "Moved grooming to Thursdays.",
//		Tags:     quire.ParseTags("team, meeting"),
//		Priority: "medium",
//		Category: "meeting",
//	})
//
//	svc.SetFilters(core.Filters{Query: "sync"})
//	visible := svc.Visible()
package quire
