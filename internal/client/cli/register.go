package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/socialnet/internal/client/api"
	pkgapi "github.com/iudanet/socialnet/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context, email, username, realName string) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	var err error
	if email, err = c.valueOrPrompt(email, "Email: "); err != nil {
		return err
	}
	if username, err = c.valueOrPrompt(username, "Username: "); err != nil {
		return err
	}
	if realName, err = c.valueOrPrompt(realName, "Real name: "); err != nil {
		return err
	}

	password, err := c.getPassword("Password (min 12 chars): ", true)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registering user...")

	err = c.authService.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
		RealName: realName,
	})
	if err != nil {
		if api.HasStatus(err, http.StatusConflict) {
			return fmt.Errorf("registration failed: email is already registered")
		}
		return fmt.Errorf("registration failed: %w", explain(err))
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Println("Please run 'socialnet login' to start using the service.")

	return nil
}
