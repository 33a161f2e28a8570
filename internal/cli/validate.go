package cli

import (
	"fmt"

	"github.com/julianstephens/journey/internal/storage"
	"github.com/julianstephens/journey/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Exit with an error when conflicts are found."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	ds, err := storage.Snapshot(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	w := ctx.out()
	fmt.Fprintf(w, "Validating %s...\n\n", ctx.Store.GetConfigPath())
	result := validation.New().ValidateDataset(ds)
	fmt.Fprintln(w, result.FormatReport())

	if c.Strict && result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found", len(result.Conflicts))
	}
	return nil
}
