package dashboard

import (
	"sync"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// Slot é o estado de uma categoria no cache
type Slot struct {
	Data         any
	IsLoading    bool
	ErrorMessage string
}

// HasError indica se a última busca falhou
func (s Slot) HasError() bool {
	return s.ErrorMessage != ""
}

// Cache guarda o último resultado de cada categoria.
// Não há deduplicação nem cancelamento: a última resposta a chegar vence.
type Cache struct {
	mu    sync.RWMutex
	slots map[domain.Category]Slot
}

func NewCache() *Cache {
	slots := make(map[domain.Category]Slot, len(domain.Categories))
	for _, category := range domain.Categories {
		slots[category] = Slot{}
	}
	return &Cache{slots: slots}
}

// Begin marca a categoria como carregando e limpa o erro anterior
func (c *Cache) Begin(category domain.Category) {
	c.mu.Lock()
	slot := c.slots[category]
	slot.IsLoading = true
	slot.ErrorMessage = ""
	c.slots[category] = slot
	c.mu.Unlock()
}

// Resolve grava o dado recebido
func (c *Cache) Resolve(category domain.Category, data any) {
	c.mu.Lock()
	slot := c.slots[category]
	slot.IsLoading = false
	slot.Data = data
	c.slots[category] = slot
	c.mu.Unlock()
}

// Reject grava a mensagem de erro e mantém o último dado conhecido
func (c *Cache) Reject(category domain.Category, message string) {
	c.mu.Lock()
	slot := c.slots[category]
	slot.IsLoading = false
	slot.ErrorMessage = message
	c.slots[category] = slot
	c.mu.Unlock()
}

func (c *Cache) Get(category domain.Category) Slot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots[category]
}

// Snapshot devolve uma cópia de todos os slots
func (c *Cache) Snapshot() map[domain.Category]Slot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[domain.Category]Slot, len(c.slots))
	for category, slot := range c.slots {
		out[category] = slot
	}
	return out
}
