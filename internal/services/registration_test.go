package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.TrainingSession{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, phone string, restricted bool) {
	t.Helper()
	u := models.User{FullName: "Trainee " + phone, Phone: phone, IsRestricted: restricted}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func seedSession(t *testing.T, gdb *gorm.DB, capacity int, registered ...string) uint {
	t.Helper()
	s := models.TrainingSession{
		Type:        "Strength",
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		MaxCapacity: capacity,
		Registered:  models.PhoneList(registered),
	}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s.ID
}

// TestToggleRegistration_CapacityRejected: a full capacity-1 session rejects
// a second trainee with no roster mutation.
func TestToggleRegistration_CapacityRejected(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501111111", false)
	seedUser(t, gdb, "0502222222", false)
	id := seedSession(t, gdb, 1, "0501111111")

	_, err := ToggleRegistration(gdb, id, "0502222222", false)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	var sess models.TrainingSession
	gdb.First(&sess, id)
	if len(sess.Registered) != 1 || sess.Registered[0] != "0501111111" {
		t.Errorf("roster mutated on rejected registration: %v", sess.Registered)
	}
}

// TestToggleRegistration_RemovalAlwaysAllowed: the sole registrant of a full
// session can still unregister.
func TestToggleRegistration_RemovalAlwaysAllowed(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501111111", false)
	id := seedSession(t, gdb, 1, "0501111111")

	sess, err := ToggleRegistration(gdb, id, "0501111111", false)
	if err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if len(sess.Registered) != 0 {
		t.Errorf("roster after unregister: %v, want empty", sess.Registered)
	}
}

func TestToggleRegistration_NormalizesPhone(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501234567", false)
	id := seedSession(t, gdb, 5)

	sess, err := ToggleRegistration(gdb, id, "972501234567", false)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !sess.Registered.Contains("0501234567") {
		t.Errorf("roster %v missing normalized phone", sess.Registered)
	}
}

func TestToggleRegistration_RestrictedBlocked(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501111111", true)
	id := seedSession(t, gdb, 5)

	if _, err := ToggleRegistration(gdb, id, "0501111111", false); !errors.Is(err, ErrRestricted) {
		t.Fatalf("err = %v, want ErrRestricted", err)
	}
}

func TestToggleRegistration_CancelledBlocksNonAdmin(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501111111", false)
	id := seedSession(t, gdb, 5)
	gdb.Model(&models.TrainingSession{}).Where("id = ?", id).Update("is_cancelled", true)

	if _, err := ToggleRegistration(gdb, id, "0501111111", false); !errors.Is(err, ErrSessionCancelled) {
		t.Fatalf("err = %v, want ErrSessionCancelled", err)
	}
}

// TestToggleRegistration_AdminBypass: admin writes ignore capacity and
// cancellation (permissive-admin behavior).
func TestToggleRegistration_AdminBypass(t *testing.T) {
	gdb := openTestDB(t)
	seedUser(t, gdb, "0501111111", false)
	seedUser(t, gdb, "0502222222", false)
	id := seedSession(t, gdb, 1, "0501111111")
	gdb.Model(&models.TrainingSession{}).Where("id = ?", id).Update("is_cancelled", true)

	sess, err := ToggleRegistration(gdb, id, "0502222222", true)
	if err != nil {
		t.Fatalf("admin over-register: %v", err)
	}
	if len(sess.Registered) != 2 {
		t.Errorf("roster = %v, want 2 entries", sess.Registered)
	}
}

func TestToggleRegistration_UnknownUser(t *testing.T) {
	gdb := openTestDB(t)
	id := seedSession(t, gdb, 5)
	if _, err := ToggleRegistration(gdb, id, "0509999999", false); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
