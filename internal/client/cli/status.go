package cli

import (
	"context"
	"strings"

	pkgapi "github.com/iudanet/socialnet/pkg/api"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	// Без access token пробуем тихо восстановить сессию по refresh cookie
	ok, err := c.authService.Restore(ctx)
	if err != nil {
		c.io.Printf("⚠️  Could not reach server: %v\n", err)
	}

	current, has := c.authService.Current()
	if !ok || !has {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'socialnet login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Server: %s\n", c.opts.server)
	c.printUser(current.User)

	return nil
}

func (c *Cli) printUser(u pkgapi.User) {
	c.io.Printf("Email: %s\n", u.Email)
	c.io.Printf("Username: %s\n", u.Username)
	if u.RealName != "" {
		c.io.Printf("Real name: %s\n", u.RealName)
	}
	if len(u.Roles) > 0 {
		c.io.Printf("Roles: %s\n", strings.Join(u.Roles, ", "))
	}
}
