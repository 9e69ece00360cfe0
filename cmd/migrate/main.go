// Command migrate applies the goose migrations to the configured postgres database.
//
//	migrate [up|down|status|version]
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/pkg/config"
	"github.com/pressly/goose"
)

func main() {
	cfg := config.New()
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	db, err := sql.Open("postgres", dbCfg.ConnString())
	if err != nil {
		log.Fatal("opening database error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err = goose.Run(command, db, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal("migration " + command + " error: " + err.Error())
	}
}
