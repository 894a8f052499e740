// Command grantadmin flips the admin flag on an existing user directly
// against the database. It exists to bootstrap the first administrator,
// before any account can reach the /admin surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/taskdeck/backend/internal/config"
	pgInfra "github.com/taskdeck/backend/internal/infrastructure/postgres"
	"github.com/taskdeck/backend/repository/postgres"
)

func main() {
	userID := flag.String("user-id", "", "identifier of the user to promote")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: grantadmin -user-id <id>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgInfra.NewPool(ctx, cfg.Database, nil)
	if err != nil {
		log.Fatalf("postgres connection failed: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	if err := users.SetAdmin(ctx, *userID, true); err != nil {
		log.Fatalf("promotion failed: %v", err)
	}

	fmt.Printf("user %s is now an administrator\n", *userID)
}
