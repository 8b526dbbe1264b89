package main

import (
	"log"

	"github.com/quotelane/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := migration.AutoMigrate(s.ctx); err != nil {
		return err
	}

	log.Println("Migrated database tables")
	return nil
}
