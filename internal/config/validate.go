package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := bcrypt.Cost([]byte(c.Bot.AdminSecretHash)); err != nil {
		return fmt.Errorf("bot.admin_secret_hash must be a bcrypt hash: %w", err)
	}

	if c.Bot.LowStockThreshold < 0 {
		return fmt.Errorf("bot.low_stock_threshold must be >= 0 (got %v)", c.Bot.LowStockThreshold)
	}

	conditions := ParseConditions(c.Bot.ConditionsRaw)
	if len(conditions) == 0 {
		return fmt.Errorf("bot.conditions must list at least one condition label")
	}
	c.Bot.Conditions = conditions

	return nil
}

// ParseConditions splits a comma-separated list of condition labels,
// trimming whitespace and dropping empty items.
func ParseConditions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
