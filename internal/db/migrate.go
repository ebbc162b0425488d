package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"saathi-bazaar/db/migrations"
)

// Migrate brings the schema at addr up to migrations.Version and returns
// the version the database is at afterwards. A dirty database or one that
// is ahead of this binary is refused.
func Migrate(addr string) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return current, fmt.Errorf("database is dirty at version %d", current)
	}
	if current > migrations.Version {
		return current, fmt.Errorf("database version %d is newer than supported version %d", current, migrations.Version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return current, err
	}
	return migrations.Version, nil
}
