package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

var (
	ErrCapacityExceeded = errors.New("session is full")
	ErrRestricted       = errors.New("trainee is restricted from registering")
	ErrSessionCancelled = errors.New("session is cancelled")
	ErrUserNotFound     = errors.New("trainee not found")
	ErrSessionNotFound  = errors.New("session not found")
)

// ToggleRegistration flips a trainee's membership in a session roster inside
// one transaction:
// - a restricted trainee is rejected before any toggle
// - already registered -> removed
// - not registered -> appended, unless the roster is at capacity
// Non-admin toggles are rejected outright on cancelled sessions. Admin
// writes bypass both the cancellation and the capacity check.
func ToggleRegistration(gdb *gorm.DB, sessionID uint, phone string, asAdmin bool) (*models.TrainingSession, error) {
	phone = NormPhone(phone)
	var out *models.TrainingSession

	err := gdb.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("phone = ?", phone).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.IsRestricted && !asAdmin {
			return ErrRestricted
		}

		var sess models.TrainingSession
		if err := tx.First(&sess, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if sess.IsCancelled && !asAdmin {
			return ErrSessionCancelled
		}

		if sess.Registered.Contains(phone) {
			sess.Registered = sess.Registered.Remove(phone)
		} else {
			if !asAdmin && len(sess.Registered) >= sess.MaxCapacity {
				return ErrCapacityExceeded
			}
			sess.Registered = append(sess.Registered, phone)
		}

		if err := tx.Save(&sess).Error; err != nil {
			return err
		}
		out = &sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
