package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log"
)

// PhoneList is an ordered set of normalized phone numbers stored as a JSON
// text column. Order is registration order.
type PhoneList []string

func (l PhoneList) Value() (driver.Value, error) {
	if l == nil {
		l = PhoneList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *PhoneList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("phone list: unsupported column type %T", src)
	}
	if len(raw) == 0 {
		*l = PhoneList{}
		return nil
	}
	var out PhoneList
	if err := json.Unmarshal(raw, &out); err != nil {
		// Corrupt blob: recover with the typed default, log only.
		log.Printf("phone list: corrupt value %q, using empty list", raw)
		*l = PhoneList{}
		return nil
	}
	*l = out
	return nil
}

// Contains reports membership of an already-normalized phone number.
func (l PhoneList) Contains(phone string) bool {
	for _, p := range l {
		if p == phone {
			return true
		}
	}
	return false
}

// Remove returns the list without the given phone, preserving order.
func (l PhoneList) Remove(phone string) PhoneList {
	out := make(PhoneList, 0, len(l))
	for _, p := range l {
		if p != phone {
			out = append(out, p)
		}
	}
	return out
}
