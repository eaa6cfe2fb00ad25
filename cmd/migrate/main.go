package main

import (
	"context"
	"fmt"

	bookpg "github.com/marcelsud/bookshelf/book/postgres"
	"github.com/marcelsud/bookshelf/config"
	notepg "github.com/marcelsud/bookshelf/note/postgres"
)

// Creates the book and note tables. Run once against a fresh database:
//
//	go run cmd/migrate/main.go
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.ValidatePostgres(); err != nil {
		fmt.Println(err)
		return
	}

	ctx := context.Background()

	bookRepo, err := bookpg.NewRepository(cfg.PostgresConnectionString())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer bookRepo.Close(ctx)

	if err := bookRepo.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("book table ready")

	noteRepo := notepg.NewRepository(bookRepo.DB)
	if err := noteRepo.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("note table ready")
}
