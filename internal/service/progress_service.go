package service

import (
	"context"
	"fmt"
	"sort"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/entity"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/repository/contract"
	"course-portal-be/internal/repository/memory"
	"course-portal-be/internal/repository/specification"
	"course-portal-be/internal/websocket"
	"course-portal-be/pkg/events"
	"course-portal-be/pkg/fingerprint"
	pktNats "course-portal-be/pkg/nats"
)

type IProgressService interface {
	ResolveSession(ctx context.Context, req *dto.ResolveSessionRequest) (*dto.ResolveSessionResponse, error)
	RecordStep(ctx context.Context, req *dto.RecordStepRequest) (*dto.ProgressRecordResponse, error)
	Reset(ctx context.Context, req *dto.ResetProgressRequest) error
	Stats(ctx context.Context) (*dto.ProgressStatsResponse, error)
}

type progressService struct {
	progress          contract.ProgressRepository
	sessions          *memory.SessionCache
	hub               *websocket.Hub
	eventPublisher    *pktNats.Publisher
	bus               IBusService
	watcher           *StatsWatcher
	defaultTotalSteps int
	logger            logger.ILogger
}

func NewProgressService(
	progress contract.ProgressRepository,
	sessions *memory.SessionCache,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	bus IBusService,
	watcher *StatsWatcher,
	defaultTotalSteps int,
	log logger.ILogger,
) IProgressService {
	return &progressService{
		progress:          progress,
		sessions:          sessions,
		hub:               hub,
		eventPublisher:    eventPublisher,
		bus:               bus,
		watcher:           watcher,
		defaultTotalSteps: defaultTotalSteps,
		logger:            log,
	}
}

// ResolveSession returns a stable session id for a device. The cache answers
// repeat calls, the store answers after a restart, and only a device never
// seen before gets a freshly minted id.
func (s *progressService) ResolveSession(ctx context.Context, req *dto.ResolveSessionRequest) (*dto.ResolveSessionResponse, error) {
	device := req.DeviceFingerprint
	if device == "" {
		return nil, apperr.Validation("device_fingerprint is required")
	}

	if sessionId, ok := s.sessions.Get(device); ok {
		return &dto.ResolveSessionResponse{SessionId: sessionId}, nil
	}

	last, err := s.progress.LatestByDevice(ctx, device)
	if err != nil {
		return nil, apperr.Upstream("failed to look up existing session", err)
	}

	var sessionId string
	if last != nil {
		sessionId = last.SessionId
	} else {
		sessionId = fingerprint.NewSessionID()
		s.logger.Info("PROGRESS", "minted new session", map[string]interface{}{
			"session_id":         sessionId,
			"device_fingerprint": device,
		})
	}

	s.sessions.Put(device, sessionId)
	return &dto.ResolveSessionResponse{SessionId: sessionId}, nil
}

func (s *progressService) RecordStep(ctx context.Context, req *dto.RecordStepRequest) (*dto.ProgressRecordResponse, error) {
	if req.SessionId == "" || req.DeviceFingerprint == "" {
		return nil, apperr.Validation("session_id and device_fingerprint are required")
	}
	if req.Step < 0 {
		return nil, apperr.Validation("step must not be negative")
	}

	total := req.TotalSteps
	if total <= 0 {
		existing, err := s.progress.FindOne(ctx, specification.BySessionDevice{
			SessionId:   req.SessionId,
			Fingerprint: req.DeviceFingerprint,
		})
		if err != nil {
			return nil, apperr.Upstream("failed to load progress record", err)
		}
		if existing != nil {
			total = existing.TotalSteps
		} else {
			total = s.defaultTotalSteps
		}
	}
	if req.Step > total {
		return nil, apperr.Validation(fmt.Sprintf("step %d exceeds total_steps %d", req.Step, total))
	}

	record := &entity.ProgressRecord{
		SessionId:         req.SessionId,
		DeviceFingerprint: req.DeviceFingerprint,
		UserAgent:         req.UserAgent,
		CurrentStep:       req.Step,
		TotalSteps:        total,
	}
	if err := s.progress.Upsert(ctx, record); err != nil {
		return nil, apperr.Upstream("failed to store progress", err)
	}

	s.sessions.Put(record.DeviceFingerprint, record.SessionId)
	s.publishChange(ctx, events.ProgressUpdated(
		record.SessionId, record.DeviceFingerprint, record.CurrentStep, record.TotalSteps,
	))

	return &dto.ProgressRecordResponse{
		Id:                record.Id,
		SessionId:         record.SessionId,
		DeviceFingerprint: record.DeviceFingerprint,
		UserAgent:         record.UserAgent,
		CurrentStep:       record.CurrentStep,
		TotalSteps:        record.TotalSteps,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}, nil
}

// Reset deletes the row for the key. The session id stays cached, so a step
// recorded right after lands in a fresh row under the same session.
func (s *progressService) Reset(ctx context.Context, req *dto.ResetProgressRequest) error {
	if req.SessionId == "" || req.DeviceFingerprint == "" {
		return apperr.Validation("session_id and device_fingerprint are required")
	}

	if err := s.progress.Delete(ctx, req.SessionId, req.DeviceFingerprint); err != nil {
		return apperr.Upstream("failed to reset progress", err)
	}

	s.publishChange(ctx, events.ProgressReset(req.SessionId, req.DeviceFingerprint))
	return nil
}

func (s *progressService) Stats(ctx context.Context) (*dto.ProgressStatsResponse, error) {
	if s.watcher != nil {
		if snap := s.watcher.Snapshot(); snap != nil {
			// Presence is live state, not store state; refresh it on read.
			snap.OnlineConnections = s.hub.OnlineCount()
			return snap, nil
		}
	}

	rows, err := s.progress.FindAll(ctx)
	if err != nil {
		return nil, apperr.Upstream("failed to load progress records", err)
	}
	return buildProgressStats(rows, s.hub.OnlineCount()), nil
}

// publishChange fans a progress change out to the durable feed and the
// in-process stats bus. Both are best effort; the row is already stored.
func (s *progressService) publishChange(ctx context.Context, evt events.Event) {
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("PROGRESS", "failed to publish change event", map[string]interface{}{
				"event_type": evt.EventType(),
				"error":      err.Error(),
			})
		}
	}
	if s.bus != nil {
		if err := s.bus.Publish(ctx, []byte(evt.EventType())); err != nil {
			s.logger.Warn("PROGRESS", "failed to notify stats bus", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// buildProgressStats keeps only the most recent record per device and orders
// the entries newest first.
func buildProgressStats(rows []*entity.ProgressRecord, online int) *dto.ProgressStatsResponse {
	latest := make(map[string]*entity.ProgressRecord)
	for _, row := range rows {
		current, ok := latest[row.DeviceFingerprint]
		if !ok || row.UpdatedAt.After(current.UpdatedAt) {
			latest[row.DeviceFingerprint] = row
		}
	}

	entries := make([]dto.UserProgressEntry, 0, len(latest))
	for _, row := range latest {
		entries = append(entries, dto.UserProgressEntry{
			DeviceFingerprint: row.DeviceFingerprint,
			SessionId:         row.SessionId,
			UserAgent:         row.UserAgent,
			CurrentStep:       row.CurrentStep,
			TotalSteps:        row.TotalSteps,
			UpdatedAt:         row.UpdatedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})

	return &dto.ProgressStatsResponse{
		TotalConnections:  len(entries),
		OnlineConnections: online,
		UsersProgress:     entries,
	}
}
