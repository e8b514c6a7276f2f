package recipients

import (
	"errors"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/alertdash/alertdash/internal/logger"
)

// Store errors
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrDuplicate    = errors.New("address already in recipient list")
	ErrNotFound     = errors.New("address not in recipient list")
)

// emailPattern is the basic syntax check applied to every address: a
// local part, an @, a domain, and an alphabetic top-level label of at
// least two characters. No DNS or mailbox-existence check.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Store persists the recipient list as a flat text file, one address per
// line. Every read goes to disk and every mutation rewrites the whole
// file; concurrent writers race and the last writer wins.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log.WithComponent("recipients"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Validate reports whether addr is a syntactically acceptable email address.
func Validate(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Load reads the current recipient list. A missing file is an empty list;
// read failures are logged and degrade to an empty list rather than
// failing the caller. Lines are trimmed, blanks dropped, and entries that
// fail validation are silently discarded since the file may have been
// hand-edited.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("file", s.path).Msg("failed to read recipient file")
		}
		return []string{}
	}

	var addrs []string
	for _, line := range strings.Split(string(data), "\n") {
		addr := strings.TrimSpace(line)
		if addr == "" || !Validate(addr) {
			continue
		}
		addrs = append(addrs, addr)
	}
	if addrs == nil {
		addrs = []string{}
	}
	return addrs
}

// Save deduplicates addrs case-insensitively (first occurrence wins),
// sorts them case-insensitively, and rewrites the backing file. The
// written file has one address per line and no trailing newline.
func (s *Store) Save(addrs []string) error {
	seen := make(map[string]bool, len(addrs))
	unique := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		key := strings.ToLower(addr)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, addr)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return strings.ToLower(unique[i]) < strings.ToLower(unique[j])
	})

	if err := os.WriteFile(s.path, []byte(strings.Join(unique, "\n")), 0644); err != nil {
		s.log.Error().Err(err).Str("file", s.path).Msg("failed to write recipient file")
		return err
	}

	s.log.Info().Int("count", len(unique)).Msg("recipient list updated")
	return nil
}

// Add validates addr and appends it to current. It returns ErrInvalidEmail
// for malformed addresses and ErrDuplicate when addr is already present
// under case-insensitive comparison. The store is not written; callers
// persist the returned slice with Save.
func (s *Store) Add(addr string, current []string) ([]string, error) {
	if !Validate(addr) {
		return current, ErrInvalidEmail
	}
	lower := strings.ToLower(addr)
	for _, existing := range current {
		if strings.ToLower(existing) == lower {
			return current, ErrDuplicate
		}
	}
	return append(current, addr), nil
}

// Remove filters addr out of current under case-insensitive comparison.
// It returns ErrNotFound when nothing was removed.
func (s *Store) Remove(addr string, current []string) ([]string, error) {
	lower := strings.ToLower(addr)
	filtered := make([]string, 0, len(current))
	for _, existing := range current {
		if strings.ToLower(existing) != lower {
			filtered = append(filtered, existing)
		}
	}
	if len(filtered) == len(current) {
		return current, ErrNotFound
	}
	return filtered, nil
}

// Clear deletes the backing file. It returns ErrNotFound when there was
// no file to delete.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		s.log.Error().Err(err).Str("file", s.path).Msg("failed to delete recipient file")
		return err
	}
	s.log.Info().Msg("recipient list deleted")
	return nil
}
