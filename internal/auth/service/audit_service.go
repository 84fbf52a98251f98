package service

//go:generate mockgen -destination=../../mocks/mock_audit_recorder.go -package=mocks github.com/ecomcore/auth-service/internal/auth/service AuditRecorder

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/ecomcore/auth-service/internal/metrics"
)

type AuditRecorder interface {
	Record(userID *string, eventType domain.EventType, success bool, details, ipAddress, userAgent string)
}

// AuditService appends security events through a bounded queue drained by a
// worker pool. Recording never blocks or fails the caller: when the queue is
// full the event is dropped and a warning logged, because audit logging must
// never cause a user-facing authentication failure.
type AuditService struct {
	repo      domain.AuditRepository
	ch        chan domain.AuditEvent
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func NewAuditService(repo domain.AuditRepository, workers, queueSize int) *AuditService {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	s := &AuditService{
		repo: repo,
		ch:   make(chan domain.AuditEvent, queueSize),
		done: make(chan struct{}),
	}

	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker()
	}

	return s
}

func (s *AuditService) worker() {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.ch:
			s.write(event)
		case <-s.done:
			for {
				select {
				case event := <-s.ch:
					s.write(event)
				default:
					return
				}
			}
		}
	}
}

func (s *AuditService) write(event domain.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.Insert(ctx, &event); err != nil {
		log.Printf("warn: failed to write %s audit event: %v", event.EventType, err)
		return
	}
	metrics.AuditEventsWritten.Inc()
}

func (s *AuditService) Record(userID *string, eventType domain.EventType, success bool, details, ipAddress, userAgent string) {
	if s.closed.Load() {
		return
	}

	event := domain.AuditEvent{
		UserID:    userID,
		EventType: eventType,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Details:   details,
		Success:   success,
		CreatedAt: time.Now(),
	}

	select {
	case s.ch <- event:
	default:
		s.dropped.Add(1)
		metrics.AuditEventsDropped.Inc()
		log.Printf("warn: audit queue full, dropped %s event", eventType)
	}
}

// Close stops accepting events, drains the queue, and waits for the workers.
func (s *AuditService) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.wg.Wait()
	})
}

// Dropped reports how many events were discarded due to queue overflow.
func (s *AuditService) Dropped() uint64 {
	return s.dropped.Load()
}
