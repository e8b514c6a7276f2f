package recipients

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertdash/alertdash/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.txt")
	return NewStore(path, logger.New("disabled", "json"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"user@example.com", true},
		{"USER.name+tag%99@sub.domain.co", true},
		{"a_b-c@x-y.org", true},
		{"a@b.museum", true},
		{"", false},
		{"plainaddress", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"user@domain.123", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user name@example.com", false},
		{" user@example.com", false},
		{"user@example.com ", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.addr))
		})
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Load())
}

func TestLoadUnreadableFileIsEmpty(t *testing.T) {
	// A directory at the backing path makes the read fail; the error must
	// degrade to an empty list, not propagate.
	dir := t.TempDir()
	s := NewStore(dir, logger.New("disabled", "json"))
	assert.Empty(t, s.Load())
}

func TestLoadFiltersHandEditedFile(t *testing.T) {
	s := newTestStore(t)
	raw := "  alice@example.com  \n\nnot-an-email\nbob@example.com\n@broken\n\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0644))

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, s.Load())
}

func TestSaveSortsAndDeduplicates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save([]string{"b@x.com", "A@x.com"}))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "A@x.com\nb@x.com", string(data))
}

func TestSaveDeduplicatesCaseInsensitivelyKeepingFirst(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save([]string{"Bob@x.com", "alice@x.com", "bob@X.COM"}))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com\nBob@x.com", string(data))
}

func TestSaveLoadIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	raw := "zoe@x.com\nalice@x.com\njunk line\nAlice@x.com\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0644))

	require.NoError(t, s.Save(s.Load()))
	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Save(s.Load()))
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAdd(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.Add("alice@x.com", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@x.com"}, updated)

	_, err = s.Add("not-an-email", updated)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = s.Add("ALICE@X.COM", updated)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAddDuplicateLeavesStoredSetUnchanged(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.Add("alice@x.com", s.Load())
	require.NoError(t, err)
	require.NoError(t, s.Save(updated))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	_, err = s.Add("Alice@x.com", s.Load())
	assert.ErrorIs(t, err, ErrDuplicate)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	current := []string{"alice@x.com", "bob@x.com"}

	updated, err := s.Remove("ALICE@x.com", current)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob@x.com"}, updated)

	_, err = s.Remove("carol@x.com", updated)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMissLeavesFileUnchanged(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]string{"alice@x.com"}))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	_, err = s.Remove("bob@x.com", s.Load())
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	// Nothing to delete yet
	assert.ErrorIs(t, s.Clear(), ErrNotFound)

	require.NoError(t, s.Save([]string{"alice@x.com"}))
	require.NoError(t, s.Clear())

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	// File already gone again
	assert.ErrorIs(t, s.Clear(), ErrNotFound)
}
