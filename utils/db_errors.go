package utils

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL error numbers we map to client errors instead of a blanket 500.
const (
	mysqlDuplicateEntry  = 1062
	mysqlBadFieldError   = 1054
	mysqlNoReferencedRow = 1452
	mysqlRowIsReferenced = 1451
	mysqlDataTruncated   = 1265
	mysqlCheckViolated   = 3819
)

// MapDBError translates driver errors into a client-facing message.
// Returns ("", false) when the error is not a recognized client fault.
func MapDBError(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return "duplicate entry violates a unique constraint", true
		case mysqlNoReferencedRow:
			return "referenced record does not exist", true
		case mysqlRowIsReferenced:
			return "record is still referenced by other rows", true
		case mysqlBadFieldError:
			return "unknown field in request", true
		case mysqlDataTruncated, mysqlCheckViolated:
			return "value violates a column constraint", true
		}
		return "", false
	}

	// sqlite (tests) and any driver that doesn't expose typed errors.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint") {
		return "duplicate entry violates a unique constraint", true
	}
	if strings.Contains(msg, "foreign key constraint") {
		return "referenced record does not exist", true
	}
	return "", false
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}
