package memory

import (
	"context"
	"sync"

	"github.com/shestoi/payment-gateway/internal/repository"
)

// MemoryRepository реализует PaymentRepository используя in-memory хранилище
// Платежи живут в памяти процесса, без вытеснения - так работает и исходный сервис
type MemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]repository.Payment // ключ = payment ID
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		payments: make(map[string]repository.Payment),
	}
}

// Add сохраняет платёж в памяти
// Защищён мьютексом для безопасного доступа из разных горутин
func (r *MemoryRepository) Add(ctx context.Context, payment repository.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = payment
	return nil
}

// GetByID получает платёж по ID из памяти
// Возвращает копию записи - вызывающий код не может изменить хранимое значение
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (repository.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, exists := r.payments[id]
	if !exists {
		return repository.Payment{}, repository.ErrNotFound
	}

	return payment, nil
}
