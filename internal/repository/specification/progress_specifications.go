package specification

import "gorm.io/gorm"

// BySessionDevice pins a query to the composite progress key.
type BySessionDevice struct {
	SessionId   string
	Fingerprint string
}

func (s BySessionDevice) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ? AND device_fingerprint = ?", s.SessionId, s.Fingerprint)
}
