package commands

import (
	"errors"

	"trackgate/internal/pkg/guard"
)

var (
	ErrCreateMerchantCommandIsNotConstructed = errors.New(
		"CreateMerchantCommand must be created via NewCreateMerchantCommand constructor",
	)
	ErrMerchantNameIsRequired = errors.New("merchant name is required")
)

// CreateMerchantCommand represents a request to register a new merchant.
// Merchant names are unique across the gateway; duplicates are rejected as
// a conflict.
type CreateMerchantCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateMerchantCommand creates a command to register a merchant.
// The name must not be empty.
func NewCreateMerchantCommand(name string) (CreateMerchantCommand, error) {
	merchantCommand := CreateMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := merchantCommand.setName(name); err != nil {
		return CreateMerchantCommand{}, err
	}

	return merchantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMerchantCommand) Validate() error {
	return c.guard.Validate(ErrCreateMerchantCommandIsNotConstructed)
}

// Name returns the requested merchant name.
func (c CreateMerchantCommand) Name() string {
	return c.name
}

func (c *CreateMerchantCommand) setName(name string) error {
	if name == "" {
		return ErrMerchantNameIsRequired
	}

	c.name = name
	return nil
}
