package seeder

import (
	"context"
	"fmt"

	"job-platform/internal/database"
	"job-platform/internal/domain/account"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// demoPassword is shared by all seeded demo accounts. Seeding is opt-in and
// meant for local environments only.
const demoPassword = "password123"

type AccountsSeeder struct{}

func (AccountsSeeder) Name() string { return "accounts" }

func (AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	demos := []struct {
		Username string
		Section  account.Section
	}{
		{Username: "demo-poster", Section: account.SectionPoster},
		{Username: "demo-applicant", Section: account.SectionApplicant},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, d := range demos {
		_, err := db.Exec(ctx, `
			INSERT INTO accounts (id, username, password_hash, section)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (username) DO NOTHING`,
			uuid.New(), d.Username, string(hash), d.Section.String(),
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", d.Username, err)
		}
	}
	return nil
}
