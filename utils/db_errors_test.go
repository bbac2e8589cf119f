package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestMapDBError_MySQLNumbers(t *testing.T) {
	cases := []struct {
		number uint16
		mapped bool
	}{
		{1062, true},  // duplicate entry
		{1452, true},  // missing referenced row
		{1451, true},  // row still referenced
		{1054, true},  // unknown column
		{1213, false}, // deadlock stays a 500
	}
	for _, tc := range cases {
		msg, ok := MapDBError(&mysql.MySQLError{Number: tc.number, Message: "x"})
		assert.Equal(t, tc.mapped, ok, "number %d", tc.number)
		if tc.mapped {
			assert.NotEmpty(t, msg)
		}
	}
}

func TestMapDBError_WrappedAndStringFallback(t *testing.T) {
	wrapped := fmt.Errorf("create failed: %w", &mysql.MySQLError{Number: 1062, Message: "dup"})
	_, ok := MapDBError(wrapped)
	assert.True(t, ok)

	_, ok = MapDBError(errors.New("UNIQUE constraint failed: hotels.slug"))
	assert.True(t, ok)

	_, ok = MapDBError(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = MapDBError(nil)
	assert.False(t, ok)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "dup"}))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: hotels.slug")))
	assert.True(t, IsDuplicateKey(errors.New("Error 1062: Duplicate entry 'x' for key 'slug'")))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1452, Message: "fk"}))
	assert.False(t, IsDuplicateKey(nil))
}
