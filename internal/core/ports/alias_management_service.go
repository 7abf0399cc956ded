package ports

import "github.com/ghostescript/alias/internal/core/domain/alias"

// AliasManagementService defines the contract for managing entries of the alias file.
type AliasManagementService interface {
	// AliasFilePath returns the alias file path the next operation will use.
	AliasFilePath() (string, error)

	// ListNames returns the sorted, de-duplicated alias and function names.
	ListNames() ([]string, error)

	// CreateEntry appends a new function block named name that runs command.
	CreateEntry(name, command string) error

	// ListEntries returns every non-blank line of the alias file with its display index.
	ListEntries() (alias.Listing, error)

	// PlanDeletion works out which entries a delete of names would remove.
	// The single name "all" selects every known name.
	PlanDeletion(names []string) (alias.DeletionPlan, error)

	// CommitDeletion rewrites the alias file without the entries marked in plan.
	CommitDeletion(plan alias.DeletionPlan) error
}
