package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/event"
)

var day = time.Date(2025, 12, 24, 20, 0, 0, 0, time.Local)

func TestOpenMissingFileDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "save.toml"), 3)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if s.HighScore() != 0 {
		t.Errorf("Expected high score 0, got %d", s.HighScore())
	}
	if s.SpinsLeft(day) != 3 {
		t.Errorf("Expected 3 spins, got %d", s.SpinsLeft(day))
	}
	if len(s.Vouchers()) != 0 {
		t.Errorf("Expected no vouchers, got %d", len(s.Vouchers()))
	}
}

func TestOpenCorruptFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	if err := os.WriteFile(path, []byte("high_score = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, 2)
	if err != nil {
		t.Fatalf("Corrupt file should not fail Open: %v", err)
	}
	if s.HighScore() != 0 {
		t.Errorf("Expected default high score, got %d", s.HighScore())
	}
}

func TestOpenUnreadableFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, 3)
	if err != nil {
		t.Fatalf("Unreadable save should not fail Open: %v", err)
	}
	if s.HighScore() != 0 || s.SpinsLeft(day) != 3 {
		t.Errorf("Expected defaults, got high score %d spins %d", s.HighScore(), s.SpinsLeft(day))
	}

	s.SetHighScore(900)
	if err := s.Save(); err != nil {
		t.Errorf("Save over unreadable file should be skipped, got %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected unreadable save path left untouched, got %v %v", info, err)
	}
}

func TestOpenSanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	content := `high_score = -50
spins_used = 2
spin_date = "yesterday"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, 3)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if s.HighScore() != 0 {
		t.Errorf("Expected negative high score clamped to 0, got %d", s.HighScore())
	}
	if s.SpinsLeft(day) != 3 {
		t.Errorf("Expected bad spin date to reset the counter, got %d spins", s.SpinsLeft(day))
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.toml")
	s, err := Open(path, 3)
	if err != nil {
		t.Fatal(err)
	}

	s.SetHighScore(1200)
	if _, err := s.UseSpin(day); err != nil {
		t.Fatalf("UseSpin failed: %v", err)
	}
	issued := s.IssueVoucher("10K", day)
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	r, err := Open(path, 3)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if r.HighScore() != 1200 {
		t.Errorf("Expected high score 1200, got %d", r.HighScore())
	}
	if r.SpinsLeft(day) != 2 {
		t.Errorf("Expected 2 spins left, got %d", r.SpinsLeft(day))
	}
	vs := r.Vouchers()
	if len(vs) != 1 {
		t.Fatalf("Expected 1 voucher, got %d", len(vs))
	}
	if vs[0].Code != issued.Code || vs[0].Tier != "10K" {
		t.Errorf("Expected %s/10K, got %s/%s", issued.Code, vs[0].Code, vs[0].Tier)
	}
	if !vs[0].Expires.Equal(issued.Expires) {
		t.Errorf("Expected expiry %v, got %v", issued.Expires, vs[0].Expires)
	}
}

func TestSaveSkipsCleanState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	s, _ := Open(path, 3)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no file written for clean state, stat err %v", err)
	}
}

func TestHighScoreOnlyIncreases(t *testing.T) {
	s, _ := Open("", 0)
	if !s.SetHighScore(300) {
		t.Error("Expected first score to be a record")
	}
	if s.SetHighScore(200) {
		t.Error("Lower score should not replace the record")
	}
	if s.HighScore() != 300 {
		t.Errorf("Expected 300, got %d", s.HighScore())
	}
}

func TestDailySpins(t *testing.T) {
	s, _ := Open("", 2)

	for want := 1; want >= 0; want-- {
		left, err := s.UseSpin(day)
		if err != nil {
			t.Fatalf("UseSpin failed: %v", err)
		}
		if left != want {
			t.Errorf("Expected %d left, got %d", want, left)
		}
	}
	if _, err := s.UseSpin(day); err != ErrNoSpins {
		t.Errorf("Expected ErrNoSpins, got %v", err)
	}

	tomorrow := day.AddDate(0, 0, 1)
	if s.SpinsLeft(tomorrow) != 2 {
		t.Errorf("Expected allowance reset next day, got %d", s.SpinsLeft(tomorrow))
	}
	if _, err := s.UseSpin(tomorrow); err != nil {
		t.Errorf("Expected spin available next day, got %v", err)
	}
}

func TestVoucherIssue(t *testing.T) {
	s, _ := Open("", 0)
	v := s.IssueVoucher("5K", day)

	if !strings.HasPrefix(v.Code, "CAMI-") || len(v.Code) != len("CAMI-")+8 {
		t.Errorf("Unexpected voucher code %q", v.Code)
	}
	if v.Code != strings.ToUpper(v.Code) {
		t.Errorf("Expected upper-case code, got %q", v.Code)
	}
	if !v.Expires.Equal(day.AddDate(0, 0, 7)) {
		t.Errorf("Expected expiry 7 days out, got %v", v.Expires)
	}
	if v.Expired(day.AddDate(0, 0, 6)) {
		t.Error("Voucher should be valid on day 6")
	}
	if !v.Expired(day.AddDate(0, 0, 7)) {
		t.Error("Voucher should expire on day 7")
	}

	other := s.IssueVoucher("10K", day)
	if other.Code == v.Code {
		t.Errorf("Expected distinct codes, both %q", v.Code)
	}
}

func TestActiveVouchers(t *testing.T) {
	s, _ := Open("", 0)
	s.IssueVoucher("5K", day.AddDate(0, 0, -10))
	s.IssueVoucher("10K", day)

	active := s.ActiveVouchers(day)
	if len(active) != 1 || active[0].Tier != "10K" {
		t.Errorf("Expected only the fresh voucher, got %+v", active)
	}
}

func TestHandlerPersistsRewardsAndScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	s, _ := Open(path, 3)
	h := NewHandler(s)

	q := event.NewEventQueue(0)
	r := event.NewRouter(q)
	r.Register(h)

	if h.LastVoucher() != nil {
		t.Error("Expected no voucher before any reward")
	}

	q.Emit(event.EventReward, &event.RewardPayload{Tier: "5K", Milestone: 1, Score: 510, At: day}, 1)
	q.Emit(event.EventGameOver, &event.GameOverPayload{Score: 640}, 2)
	r.DispatchAll()

	last := h.LastVoucher()
	if last == nil || last.Tier != "5K" {
		t.Fatalf("Expected last voucher tier 5K, got %+v", last)
	}

	reloaded, err := Open(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.HighScore() != 640 {
		t.Errorf("Expected persisted high score 640, got %d", reloaded.HighScore())
	}
	if len(reloaded.Vouchers()) != 1 {
		t.Errorf("Expected 1 persisted voucher, got %d", len(reloaded.Vouchers()))
	}
}
