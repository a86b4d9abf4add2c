package stats

import (
	"time"

	"course-portal-be/internal/entity"
)

// DeviceInfo summarizes one device's submission history. First/last are the
// min/max timestamps observed in the group.
type DeviceInfo struct {
	DeviceFingerprint string    `json:"device_fingerprint"`
	UserAgent         string    `json:"user_agent,omitempty"`
	ScreenResolution  string    `json:"screen_resolution,omitempty"`
	Timezone          string    `json:"timezone,omitempty"`
	Language          string    `json:"language,omitempty"`
	IpAddress         string    `json:"ip_address,omitempty"`
	SubmissionCount   int       `json:"submission_count"`
	FirstSubmission   time.Time `json:"first_submission"`
	LastSubmission    time.Time `json:"last_submission"`
}

type DeviceGroup struct {
	DeviceInfo  DeviceInfo                `json:"device_info"`
	Submissions []entity.SurveySubmission `json:"submissions"`
}

// DateRange carries the global min/max submission timestamps, nil for empty
// input.
type DateRange struct {
	Earliest *time.Time `json:"earliest"`
	Latest   *time.Time `json:"latest"`
}

type Result struct {
	TotalCount        int            `json:"total_submissions"`
	UniqueDeviceCount int            `json:"unique_devices"`
	ByDay             map[string]int `json:"submissions_by_day"`
	DateRange         DateRange      `json:"date_range"`
	DeviceGroups      []DeviceGroup  `json:"device_groups"`
}

// Aggregate groups submissions by device fingerprint and by UTC calendar day.
// Pure function: fetching the rows and gating access is the caller's job.
func Aggregate(submissions []entity.SurveySubmission) *Result {
	res := &Result{
		TotalCount: len(submissions),
		ByDay:      make(map[string]int),
	}

	groups := make(map[string]*DeviceGroup)
	var order []string

	for i := range submissions {
		sub := submissions[i]

		day := sub.SubmittedAt.UTC().Format("2006-01-02")
		res.ByDay[day]++

		g, ok := groups[sub.DeviceFingerprint]
		if !ok {
			g = &DeviceGroup{
				DeviceInfo: DeviceInfo{
					DeviceFingerprint: sub.DeviceFingerprint,
					UserAgent:         sub.UserAgent,
					ScreenResolution:  sub.ScreenResolution,
					Timezone:          sub.Timezone,
					Language:          sub.Language,
					IpAddress:         sub.IpAddress,
					FirstSubmission:   sub.SubmittedAt,
					LastSubmission:    sub.SubmittedAt,
				},
			}
			groups[sub.DeviceFingerprint] = g
			order = append(order, sub.DeviceFingerprint)
		}

		g.Submissions = append(g.Submissions, sub)
		g.DeviceInfo.SubmissionCount++
		if sub.SubmittedAt.Before(g.DeviceInfo.FirstSubmission) {
			g.DeviceInfo.FirstSubmission = sub.SubmittedAt
		}
		if sub.SubmittedAt.After(g.DeviceInfo.LastSubmission) {
			g.DeviceInfo.LastSubmission = sub.SubmittedAt
		}

		if res.DateRange.Earliest == nil || sub.SubmittedAt.Before(*res.DateRange.Earliest) {
			t := sub.SubmittedAt
			res.DateRange.Earliest = &t
		}
		if res.DateRange.Latest == nil || sub.SubmittedAt.After(*res.DateRange.Latest) {
			t := sub.SubmittedAt
			res.DateRange.Latest = &t
		}
	}

	res.UniqueDeviceCount = len(groups)

	// First-seen order keeps output stable across calls with the same input.
	res.DeviceGroups = make([]DeviceGroup, 0, len(order))
	for _, fp := range order {
		res.DeviceGroups = append(res.DeviceGroups, *groups[fp])
	}

	return res
}
