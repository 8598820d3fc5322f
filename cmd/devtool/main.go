package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"autoconnect/config"
	"autoconnect/internal/infra/auth"
	"autoconnect/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - token:   Issue a local access token for a directory user
// - migrate: Apply the database schema migrations

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	tokenUser := tokenCmd.String("user", "", "Directory user ID (UUID) the token is issued for")
	tokenRoles := tokenCmd.String("roles", "", "Comma-separated roles recorded in the token")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case "token":
		if err = tokenCmd.Parse(os.Args[2:]); err == nil {
			err = runToken(*tokenUser, *tokenRoles)
		}
	case "migrate":
		if err = migrateCmd.Parse(os.Args[2:]); err == nil {
			err = runMigrate(ctx)
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runToken(user, roles string) error {
	userID, err := uuid.Parse(strings.TrimSpace(user))
	if err != nil {
		return errors.Wrap(err, "invalid -user")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	var roleList []string
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	token, err := tokenSvc.IssueAccessToken(userID, roleList)
	if err != nil {
		return err
	}
	fmt.Println(token)

	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres config section is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		return err
	}
	fmt.Println("Migrations applied")

	return nil
}

func printUsage() {
	fmt.Println("Usage: devtool <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  token    Issue a local access token (-user <uuid> [-roles admin])")
	fmt.Println("  migrate  Apply the database schema migrations")
}
