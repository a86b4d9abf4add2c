package specification

import "gorm.io/gorm"

type BySurveyId struct {
	SurveyId string
}

func (s BySurveyId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("survey_id = ?", s.SurveyId)
}

type ByDeviceFingerprint struct {
	Fingerprint string
}

func (s ByDeviceFingerprint) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("device_fingerprint = ?", s.Fingerprint)
}
