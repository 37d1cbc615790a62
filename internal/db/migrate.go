package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"

	"edu-dashboard/db/migrations"
)

// Migrate applies the embedded migrations up to migrations.Version.
func Migrate(addr string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return describeMigrationError(err)
	}

	return nil
}

// describeMigrationError adds the SQLSTATE reported by the postgres
// driver, which golang-migrate keeps in database.Error.OrigErr.
func describeMigrationError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		var dbErr database.Error
		if !errors.As(err, &dbErr) || !errors.As(dbErr.OrigErr, &pqErr) {
			return err
		}
	}
	return fmt.Errorf("%w (sqlstate %s %s)", err, pqErr.Code, pqErr.Code.Name())
}
