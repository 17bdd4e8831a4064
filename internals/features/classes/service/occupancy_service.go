// file: internals/features/classes/service/occupancy_service.go
//
// Cache de lotação das aulas do dia. Check-ins e cancelamentos invalidam
// o cache; o coalescer junta rajadas de invalidação num único reload.
package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimclub_backend/internals/helpers/refresh"
)

type OccupancyCache struct {
	db        *gorm.DB
	mu        sync.RWMutex
	counts    map[uuid.UUID]int
	coalescer *refresh.Coalescer
}

func NewOccupancyCache(db *gorm.DB) *OccupancyCache {
	c := &OccupancyCache{
		db:     db,
		counts: map[uuid.UUID]int{},
	}
	c.coalescer = refresh.NewCoalescer(200*time.Millisecond, c.reload)
	return c
}

// Invalidate agenda um reload; chamadas em rajada disparam um só.
func (c *OccupancyCache) Invalidate() {
	c.coalescer.Invalidate()
}

// Count devolve a lotação em cache; aula desconhecida vale zero.
func (c *OccupancyCache) Count(classID uuid.UUID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[classID]
}

func (c *OccupancyCache) Close() {
	c.coalescer.Close()
}

func (c *OccupancyCache) reload() {
	type row struct {
		ClassID uuid.UUID `gorm:"column:class_checkin_class_id"`
		Total   int       `gorm:"column:total"`
	}

	var rows []row
	err := c.db.Table("class_checkins").
		Select("class_checkin_class_id, COUNT(*) AS total").
		Group("class_checkin_class_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] recarregar lotação das aulas: %v", err)
		return
	}

	fresh := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		fresh[r.ClassID] = r.Total
	}

	c.mu.Lock()
	c.counts = fresh
	c.mu.Unlock()
}
