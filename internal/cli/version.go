package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/oiiobuild/internal"
)

// Represents the 'oiiobuild version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.Info().String())
	return nil
}
