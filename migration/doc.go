// Package migration models multi-step upgrade guides and chains them
// into migration paths.
//
// A Guide holds structured, renderable instructions for moving between
// two versions. A Plan is a library of guides treated as edges of a
// version graph; FindPath assembles a hop sequence between arbitrary
// versions. A Status tracks one user's progress through one guide.
//
// # Building a guide
//
//	guide := migration.NewGuide(from, to,
//	    "OxideKit 0.5 to 0.6 Migration",
//	    "Covers the 0.5 -> 0.6 upgrade.").WithTime(30)
//	guide.AddPrerequisite("Back up your project")
//	guide.AddStep(migration.NewStep("Update dependencies"))
//	fmt.Println(guide.ToMarkdown())
//
// # Planning a path
//
//	plan := migration.NewPlan()
//	plan.AddGuide(guideA) // 0.5 -> 0.6
//	plan.AddGuide(guideB) // 0.6 -> 0.7
//	path := plan.FindPath(v050, v070)
//	fmt.Println(plan.PathToMarkdown(path))
//
// Guide libraries can also be loaded from YAML documents with
// LoadLibrary. The package does no I/O and keeps no global state;
// loading files and persisting Status values belong to the caller.
package migration
