package storage

import (
	"context"

	"dmac_back_end/internal/models"
)

// Storage regroupe tous les accès au store relationnel. Les méthodes "Get"
// unitaires renvoient (nil, nil) quand la ligne n'existe pas.
type Storage interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error

	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	GetEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) error
	UpdateEvent(ctx context.Context, e *models.Event) error
	DeleteEvent(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByPollURL(ctx context.Context, pollURL string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	SetOrderPayment(ctx context.Context, id, status, pollURL, reference string) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
}

// Store est l'implémentation active, branchée au démarrage (Postgres en prod,
// mémoire dans les tests).
var Store Storage
