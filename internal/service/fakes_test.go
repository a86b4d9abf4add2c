package service

import (
	"context"
	"sync"
	"time"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the specification types the
// services actually use instead of building SQL.

type fakeProgressRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.ProgressRecord
	now  func() time.Time

	failNext error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{
		rows: make(map[string]*entity.ProgressRecord),
		now:  time.Now,
	}
}

func progressKey(sessionId, fingerprint string) string {
	return sessionId + "|" + fingerprint
}

func (r *fakeProgressRepo) Upsert(_ context.Context, record *entity.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}

	key := progressKey(record.SessionId, record.DeviceFingerprint)
	now := r.now()
	if existing, ok := r.rows[key]; ok {
		record.Id = existing.Id
		record.CreatedAt = existing.CreatedAt
	} else {
		record.Id = uuid.New()
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	stored := *record
	r.rows[key] = &stored
	return nil
}

func (r *fakeProgressRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.BySessionDevice); ok {
			if row, ok := r.rows[progressKey(s.SessionId, s.Fingerprint)]; ok {
				copied := *row
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeProgressRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}

	out := make([]*entity.ProgressRecord, 0, len(r.rows))
	for _, row := range r.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProgressRepo) LatestByDevice(_ context.Context, fingerprint string) (*entity.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.ProgressRecord
	for _, row := range r.rows {
		if row.DeviceFingerprint != fingerprint {
			continue
		}
		if latest == nil || row.UpdatedAt.After(latest.UpdatedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, sessionId, fingerprint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, progressKey(sessionId, fingerprint))
	return nil
}

type fakeSubmissionRepo struct {
	mu   sync.Mutex
	rows []*entity.SurveySubmission

	failNext error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *entity.SurveySubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}

	submission.Id = uuid.New()
	submission.CreatedAt = time.Now()
	submission.UpdatedAt = submission.CreatedAt
	stored := *submission
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *fakeSubmissionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.SurveySubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var surveyId string
	for _, spec := range specs {
		if s, ok := spec.(specification.BySurveyId); ok {
			surveyId = s.SurveyId
		}
	}

	out := make([]*entity.SurveySubmission, 0, len(r.rows))
	for _, row := range r.rows {
		if surveyId != "" && row.SurveyId != surveyId {
			continue
		}
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(context.Background(), specs...)
	return int64(len(rows)), err
}

type fakeApiKeyRepo struct {
	keys map[string]*entity.ApiKey
}

func newFakeApiKeyRepo(keys ...entity.ApiKey) *fakeApiKeyRepo {
	r := &fakeApiKeyRepo{keys: make(map[string]*entity.ApiKey)}
	for i := range keys {
		k := keys[i]
		r.keys[k.StudentId+"|"+k.Name] = &k
	}
	return r
}

func (r *fakeApiKeyRepo) FindByStudent(_ context.Context, studentId, name string) (*entity.ApiKey, error) {
	if k, ok := r.keys[studentId+"|"+name]; ok {
		copied := *k
		return &copied, nil
	}
	return nil, nil
}
