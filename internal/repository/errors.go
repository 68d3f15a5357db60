package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate entry")
)

const mysqlDuplicateEntry = 1062

// translateError maps driver errors onto the repository sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}

// insertedID returns the auto-increment id of an insert (or of the row an
// upsert with LAST_INSERT_ID(id) touched).
func insertedID(result sql.Result) (int, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return int(id), nil
}

// requireAffected reports ErrNotFound when a delete touched no rows. Updates
// cannot use it: MySQL reports unchanged rows as unaffected.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
