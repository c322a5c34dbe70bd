package store

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/festive-catch/constants"
)

const dateLayout = "2006-01-02"

// ErrNoSpins is returned by UseSpin when today's allowance is spent
var ErrNoSpins = errors.New("no spins left today")

// Voucher is an issued reward record
type Voucher struct {
	Code    string    `toml:"code"`
	Tier    string    `toml:"tier"`
	Issued  time.Time `toml:"issued"`
	Expires time.Time `toml:"expires"`
}

// Expired reports whether the voucher is past its expiry at now
func (v Voucher) Expired(now time.Time) bool {
	return !now.Before(v.Expires)
}

// State is the persisted document
type State struct {
	HighScore int       `toml:"high_score"`
	SpinsUsed int       `toml:"spins_used"`
	SpinDate  string    `toml:"spin_date"`
	Vouchers  []Voucher `toml:"vouchers"`
}

// Store holds persisted counters and vouchers behind a TOML file
// Zero values stand in for anything missing or unreadable
type Store struct {
	mu         sync.Mutex
	path       string
	dailySpins int
	state      State
	dirty      bool
	readOnly   bool // Save file exists but could not be read; never overwritten
	newCode    func() string
}

// Open loads path; a missing file yields defaults, a corrupt one is logged and replaced by defaults
// An unreadable file is logged and left untouched: the store runs on defaults and Save skips it
// An empty path gives an in-memory store whose Save is a no-op
func Open(path string, dailySpins int) (*Store, error) {
	s := &Store{
		path:       path,
		dailySpins: dailySpins,
		newCode:    voucherCode,
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		log.Printf("store: cannot read save file %s, using defaults without saving: %v", path, err)
		s.readOnly = true
		return s, nil
	}

	var st State
	if _, err := toml.Decode(string(data), &st); err != nil {
		log.Printf("store: corrupt save file %s, using defaults: %v", path, err)
		return s, nil
	}
	s.state = sanitize(st)
	return s, nil
}

func sanitize(st State) State {
	if st.HighScore < 0 {
		st.HighScore = 0
	}
	if st.SpinsUsed < 0 {
		st.SpinsUsed = 0
	}
	if _, err := time.Parse(dateLayout, st.SpinDate); err != nil {
		st.SpinDate = ""
		st.SpinsUsed = 0
	}
	valid := st.Vouchers[:0]
	for _, v := range st.Vouchers {
		if v.Code != "" {
			valid = append(valid, v)
		}
	}
	st.Vouchers = valid
	return st
}

// voucherCode derives a short upper-case code from a random UUID
func voucherCode() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return constants.VoucherPrefix + strings.ToUpper(id[:8])
}

// Path returns the backing file, empty for in-memory stores
func (s *Store) Path() string {
	return s.path
}

// HighScore returns the best recorded score
func (s *Store) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HighScore
}

// SetHighScore records score if it beats the current best and reports whether it did
func (s *Store) SetHighScore(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.state.HighScore {
		return false
	}
	s.state.HighScore = score
	s.dirty = true
	return true
}

// SpinsLeft returns remaining wheel spins for the calendar day of today
func (s *Store) SpinsLeft(today time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinsLeftLocked(today)
}

func (s *Store) spinsLeftLocked(today time.Time) int {
	used := s.state.SpinsUsed
	if s.state.SpinDate != today.Format(dateLayout) {
		used = 0
	}
	left := s.dailySpins - used
	if left < 0 {
		return 0
	}
	return left
}

// UseSpin consumes one spin for today and returns what remains
// The counter resets when the stored date differs from today
func (s *Store) UseSpin(today time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinsLeftLocked(today) == 0 {
		return 0, ErrNoSpins
	}
	date := today.Format(dateLayout)
	if s.state.SpinDate != date {
		s.state.SpinDate = date
		s.state.SpinsUsed = 0
	}
	s.state.SpinsUsed++
	s.dirty = true
	return s.spinsLeftLocked(today), nil
}

// IssueVoucher records a new voucher for tier valid for a week from now
func (s *Store) IssueVoucher(tier string, now time.Time) Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := Voucher{
		Code:    s.newCode(),
		Tier:    tier,
		Issued:  now,
		Expires: now.AddDate(0, 0, constants.VoucherLifeDay),
	}
	s.state.Vouchers = append(s.state.Vouchers, v)
	s.dirty = true
	return v
}

// Vouchers returns a copy of every issued voucher, oldest first
func (s *Store) Vouchers() []Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Voucher, len(s.state.Vouchers))
	copy(out, s.state.Vouchers)
	return out
}

// ActiveVouchers returns vouchers not yet expired at now
func (s *Store) ActiveVouchers(now time.Time) []Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Voucher
	for _, v := range s.state.Vouchers {
		if !v.Expired(now) {
			out = append(out, v)
		}
	}
	return out
}

// Save writes the state if it changed since the last save
// The file is replaced atomically through a temp file in the same directory
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" || s.readOnly || !s.dirty {
		return nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.state); err != nil {
		return errors.Wrap(err, "encode save state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create save dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.toml")
	if err != nil {
		return errors.Wrap(err, "create temp save file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp save file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp save file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replace save file %s", s.path)
	}

	s.dirty = false
	return nil
}
