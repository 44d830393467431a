package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		c.io.Printf("⚠️  Server logout failed: %v\n", err)
		c.io.Println("Your local session has been deleted anyway.")
		return nil
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}

func (c *Cli) runLogoutAll(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	c.io.Println("=== Logout on all devices ===")

	if err := c.authService.LogoutAll(ctx); err != nil {
		return explain(err)
	}

	c.io.Println("✓ All sessions have been terminated.")
	c.io.Println("Your local session has been deleted.")

	return nil
}
