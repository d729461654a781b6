package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/gridrec/internal/ctxlog"
	"github.com/vk/gridrec/internal/record"
)

// Run executes the configured action: describe every registered record
// type, or instantiate one type and print its projection as JSON.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.TypeName == "" {
		return a.describe(ctx)
	}
	return a.project(ctx, a.config.TypeName)
}

// describe prints the field listing of a fresh instance of every
// registered type, in registration order.
func (a *App) describe(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Describing registered record types.", "count", a.registry.Len())

	for _, name := range a.registry.Names() {
		schema, _ := a.registry.Lookup(name)
		c, err := schema.New()
		if err != nil {
			return fmt.Errorf("instantiating %s: %w", name, err)
		}
		fmt.Fprintln(a.outW, c.String())
	}
	return nil
}

// project instantiates the named type and prints its dictionary projection.
func (a *App) project(ctx context.Context, name string) error {
	logger := ctxlog.FromContext(ctx)

	schema, ok := a.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown record type %q (have: %v)", name, a.registry.Names())
	}

	c, err := schema.New()
	if err != nil {
		return fmt.Errorf("instantiating %s: %w", name, err)
	}

	d := c.AsDict(record.ProjectOptions{
		Recursive: a.config.Recursive,
		Flatten:   a.config.Flatten,
	})
	logger.Debug("Projection built.", "type", name, "keys", d.Len())

	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projection of %s: %w", name, err)
	}
	fmt.Fprintln(a.outW, string(out))
	return nil
}
