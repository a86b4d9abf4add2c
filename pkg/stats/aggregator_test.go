package stats

import (
	"testing"
	"time"

	"course-portal-be/internal/entity"

	"github.com/google/uuid"
)

func sub(device string, at time.Time) entity.SurveySubmission {
	return entity.SurveySubmission{
		Id:                uuid.New(),
		SurveyId:          "course-feedback",
		DeviceFingerprint: device,
		UserAgent:         "agent-" + device,
		SubmittedAt:       at,
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)

	if res.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", res.TotalCount)
	}
	if res.UniqueDeviceCount != 0 {
		t.Errorf("UniqueDeviceCount = %d, want 0", res.UniqueDeviceCount)
	}
	if len(res.ByDay) != 0 {
		t.Errorf("ByDay = %v, want empty", res.ByDay)
	}
	if res.DateRange.Earliest != nil || res.DateRange.Latest != nil {
		t.Errorf("DateRange = %+v, want nil bounds", res.DateRange)
	}
	if len(res.DeviceGroups) != 0 {
		t.Errorf("DeviceGroups = %v, want empty", res.DeviceGroups)
	}
}

func TestAggregateGroupsAndBuckets(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC)

	input := []entity.SurveySubmission{
		sub("device-a", day1),
		sub("device-b", day1.Add(2 * time.Hour)),
		sub("device-a", day2),
	}

	res := Aggregate(input)

	if res.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", res.TotalCount)
	}
	if res.UniqueDeviceCount != 2 {
		t.Errorf("UniqueDeviceCount = %d, want 2", res.UniqueDeviceCount)
	}

	total := 0
	for _, n := range res.ByDay {
		total += n
	}
	if total != 3 {
		t.Errorf("ByDay counts sum to %d, want 3", total)
	}
	if res.ByDay["2025-03-10"] != 2 || res.ByDay["2025-03-11"] != 1 {
		t.Errorf("ByDay = %v, want 2025-03-10:2 2025-03-11:1", res.ByDay)
	}

	if res.DateRange.Earliest == nil || !res.DateRange.Earliest.Equal(day1) {
		t.Errorf("Earliest = %v, want %v", res.DateRange.Earliest, day1)
	}
	if res.DateRange.Latest == nil || !res.DateRange.Latest.Equal(day2) {
		t.Errorf("Latest = %v, want %v", res.DateRange.Latest, day2)
	}
}

func TestAggregateDeviceGroupBounds(t *testing.T) {
	early := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	late := early.Add(26 * time.Hour)

	// Deliberately unsorted: the group must still report min/max.
	input := []entity.SurveySubmission{
		sub("device-a", late),
		sub("device-a", early),
		sub("device-a", early.Add(time.Hour)),
	}

	res := Aggregate(input)

	if len(res.DeviceGroups) != 1 {
		t.Fatalf("DeviceGroups len = %d, want 1", len(res.DeviceGroups))
	}
	info := res.DeviceGroups[0].DeviceInfo
	if info.SubmissionCount != 3 {
		t.Errorf("SubmissionCount = %d, want 3", info.SubmissionCount)
	}
	if !info.FirstSubmission.Equal(early) {
		t.Errorf("FirstSubmission = %v, want %v", info.FirstSubmission, early)
	}
	if !info.LastSubmission.Equal(late) {
		t.Errorf("LastSubmission = %v, want %v", info.LastSubmission, late)
	}
}

func TestAggregateUTCDayBoundary(t *testing.T) {
	// 23:30 UTC and 00:30 UTC the next day land in different buckets even
	// though they are an hour apart.
	before := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	after := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)

	res := Aggregate([]entity.SurveySubmission{sub("d", before), sub("d", after)})

	if len(res.ByDay) != 2 {
		t.Errorf("ByDay = %v, want two buckets", res.ByDay)
	}
}

func TestAggregateStableOrder(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	input := []entity.SurveySubmission{
		sub("device-c", at),
		sub("device-a", at),
		sub("device-b", at),
	}

	first := Aggregate(input)
	second := Aggregate(input)

	for i := range first.DeviceGroups {
		if first.DeviceGroups[i].DeviceInfo.DeviceFingerprint != second.DeviceGroups[i].DeviceInfo.DeviceFingerprint {
			t.Fatal("device group order is not stable across calls")
		}
	}
}
