package entity

import "time"

// ApiKey maps a (student id, name) pair to the key handed out for course
// assignments. Both fields must match for a lookup to succeed.
type ApiKey struct {
	StudentId string
	Name      string
	Key       string
	CreatedAt time.Time
}
