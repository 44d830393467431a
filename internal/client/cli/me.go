package cli

import (
	"context"
	"time"
)

func (c *Cli) runMe(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	user, err := c.authService.Me(ctx)
	if err != nil {
		return explain(err)
	}

	c.io.Println("=== Current User ===")
	c.io.Printf("ID: %s\n", user.ID)
	c.printUser(*user)
	if !user.CreatedAt.IsZero() {
		c.io.Printf("Registered: %s\n", user.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
