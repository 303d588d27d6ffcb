package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Run executes the hashpw command.
func (c *HashpwCmd) Run(deps *Dependencies) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(hash))
	return nil
}
