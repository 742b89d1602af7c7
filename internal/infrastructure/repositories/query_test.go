package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "gdgoc.backend/internal/domain/errors"
	domainRepos "gdgoc.backend/internal/domain/repositories"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), domainerrors.ErrNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), domainerrors.ErrAlreadyExists)
	assert.ErrorIs(t, translateError(errors.New("UNIQUE constraint failed: admins.username")), domainerrors.ErrAlreadyExists)
	assert.ErrorIs(t, translateError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_admins_username"`)), domainerrors.ErrAlreadyExists)

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
}

func TestListFilterOffset(t *testing.T) {
	assert.Equal(t, 0, domainRepos.ListFilter{}.Offset())
	assert.Equal(t, 0, domainRepos.ListFilter{Page: 3}.Offset())
	assert.Equal(t, 20, domainRepos.ListFilter{Page: 3, Limit: 10}.Offset())
}
