package storage

import (
	"context"
	"sort"
	"sync"

	"dmac_back_end/internal/models"
)

// MemoryStorage garde tout en maps protégées par mutex. Utilisé par les tests,
// jamais en production.
type MemoryStorage struct {
	mu           sync.RWMutex
	services     map[string]models.Service
	products     map[string]models.Product
	testimonials map[string]models.Testimonial
	events       map[string]models.Event
	orders       map[string]models.Order
	orderItems   map[string][]models.OrderItem
}

func NewMemory() *MemoryStorage {
	return &MemoryStorage{
		services:     make(map[string]models.Service),
		products:     make(map[string]models.Product),
		testimonials: make(map[string]models.Testimonial),
		events:       make(map[string]models.Event),
		orders:       make(map[string]models.Order),
		orderItems:   make(map[string][]models.OrderItem),
	}
}

func (m *MemoryStorage) GetServices(_ context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Service{}
	for _, s := range m.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStorage) GetService(_ context.Context, id string) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *MemoryStorage) CreateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ID] = *s
	return nil
}

func (m *MemoryStorage) UpdateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ID] = *s
	return nil
}

func (m *MemoryStorage) DeleteService(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.services, id)
	return nil
}

func (m *MemoryStorage) GetProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStorage) GetProduct(_ context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *MemoryStorage) CreateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = *p
	return nil
}

func (m *MemoryStorage) UpdateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = *p
	return nil
}

func (m *MemoryStorage) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *MemoryStorage) GetTestimonials(_ context.Context) ([]models.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Testimonial{}
	for _, t := range m.testimonials {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStorage) CreateTestimonial(_ context.Context, t *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.testimonials[t.ID] = *t
	return nil
}

func (m *MemoryStorage) DeleteTestimonial(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.testimonials, id)
	return nil
}

func (m *MemoryStorage) GetEvents(_ context.Context) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Event{}
	for _, e := range m.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *MemoryStorage) GetEvent(_ context.Context, id string) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.events[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *MemoryStorage) CreateEvent(_ context.Context, e *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = *e
	return nil
}

func (m *MemoryStorage) UpdateEvent(_ context.Context, e *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = *e
	return nil
}

func (m *MemoryStorage) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.events, id)
	return nil
}

func (m *MemoryStorage) CreateOrder(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = *o
	return nil
}

func (m *MemoryStorage) GetOrder(_ context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (m *MemoryStorage) GetOrders(_ context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Order{}
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStorage) GetOrderByPollURL(_ context.Context, pollURL string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.PollURL != nil && *o.PollURL == pollURL {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *MemoryStorage) UpdateOrderStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.Status = status
		m.orders[id] = o
	}
	return nil
}

func (m *MemoryStorage) SetOrderPayment(_ context.Context, id, status, pollURL, reference string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.Status = status
		o.PollURL = &pollURL
		o.PaynowReference = &reference
		m.orders[id] = o
	}
	return nil
}

func (m *MemoryStorage) CreateOrderItem(_ context.Context, item *models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orderItems[item.OrderID] = append(m.orderItems[item.OrderID], *item)
	return nil
}

func (m *MemoryStorage) GetOrderItems(_ context.Context, orderID string) ([]models.OrderItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := []models.OrderItem{}
	items = append(items, m.orderItems[orderID]...)
	return items, nil
}
