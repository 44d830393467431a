package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, email string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Повторный вход допустим: сервер заменит прежнюю сессию этого клиента
	if current, ok := c.authService.Current(); ok {
		c.io.Printf("Already logged in as %s, logging in again.\n", current.User.Email)
	}

	email, err := c.valueOrPrompt(email, "Email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword("Password: ", false)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	sess, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", explain(err))
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", sess.User.Email)
	c.io.Printf("Username: %s\n", sess.User.Username)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
