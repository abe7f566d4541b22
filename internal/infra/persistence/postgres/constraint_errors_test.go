package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "pgx unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "wrapped pgx unique violation", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "failed to create user"), want: true},
		{name: "gorm sentinel", err: gorm.ErrDuplicatedKey, want: true},
		{name: "foreign key code is not unique", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "unrelated error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "pgx foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: true},
		{name: "wrapped pgx foreign key violation", err: errors.Wrap(&pgconn.PgError{Code: "23503"}, "failed to create location"), want: true},
		{name: "gorm sentinel", err: gorm.ErrForeignKeyViolated, want: true},
		{name: "unique code is not foreign key", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "unrelated error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isForeignKeyConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23502"}, "failed to create saved address")))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset")))
}
