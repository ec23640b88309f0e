package scheduling

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the availability scheduling engine: plan-period resolution,
// enrollment maintenance, availability toggling, calendar aggregation and
// per-period notes. Handlers are expected to stay thin and call into it.
type Service struct {
	db  *gorm.DB
	log *zap.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:    db,
		log:   log,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// personLock returns the mutex serializing read-modify-write operations for
// one person. Two concurrent toggles on the same slot must never both
// observe "absent" and create duplicate active rows.
func (s *Service) personLock(personID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[personID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[personID] = l
	}
	return l
}
