package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmac_back_end/internal/models"
)

// PostgresStorage implémente Storage au-dessus d'un pool pgx.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// =============================================
// SERVICES
// =============================================

const serviceColumns = "id, name, description, short_description, price, duration, image, category, featured"

func scanService(row pgx.Row) (*models.Service, error) {
	var s models.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.ShortDescription, &s.Price,
		&s.Duration, &s.Image, &s.Category, &s.Featured)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (st *PostgresStorage) GetServices(ctx context.Context) ([]models.Service, error) {
	rows, err := st.pool.Query(ctx, "SELECT "+serviceColumns+" FROM services")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

func (st *PostgresStorage) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, err := scanService(st.pool.QueryRow(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

func (st *PostgresStorage) CreateService(ctx context.Context, s *models.Service) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO services (id, name, description, short_description, price, duration, image, category, featured)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.Name, s.Description, s.ShortDescription, s.Price, s.Duration, s.Image, s.Category, s.Featured)
	return err
}

func (st *PostgresStorage) UpdateService(ctx context.Context, s *models.Service) error {
	_, err := st.pool.Exec(ctx,
		`UPDATE services SET name=$2, description=$3, short_description=$4, price=$5, duration=$6, image=$7, category=$8, featured=$9
		 WHERE id=$1`,
		s.ID, s.Name, s.Description, s.ShortDescription, s.Price, s.Duration, s.Image, s.Category, s.Featured)
	return err
}

func (st *PostgresStorage) DeleteService(ctx context.Context, id string) error {
	_, err := st.pool.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	return err
}

// =============================================
// PRODUCTS
// =============================================

const productColumns = "id, name, description, price, image, category, in_stock"

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.InStock)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (st *PostgresStorage) GetProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := st.pool.Query(ctx, "SELECT "+productColumns+" FROM products")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (st *PostgresStorage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := scanProduct(st.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (st *PostgresStorage) CreateProduct(ctx context.Context, p *models.Product) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO products (id, name, description, price, image, category, in_stock)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.InStock)
	return err
}

func (st *PostgresStorage) UpdateProduct(ctx context.Context, p *models.Product) error {
	_, err := st.pool.Exec(ctx,
		`UPDATE products SET name=$2, description=$3, price=$4, image=$5, category=$6, in_stock=$7 WHERE id=$1`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.InStock)
	return err
}

func (st *PostgresStorage) DeleteProduct(ctx context.Context, id string) error {
	_, err := st.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

// =============================================
// TESTIMONIALS
// =============================================

func (st *PostgresStorage) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := st.pool.Query(ctx, "SELECT id, name, role, content, rating FROM testimonials")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (st *PostgresStorage) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO testimonials (id, name, role, content, rating) VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Name, t.Role, t.Content, t.Rating)
	return err
}

func (st *PostgresStorage) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := st.pool.Exec(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	return err
}

// =============================================
// EVENTS
// =============================================

const eventColumns = "id, title, description, venue, date, start_time, end_time, category, ticket_price, capacity, images, created_at"

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Venue, &e.Date, &e.StartTime,
		&e.EndTime, &e.Category, &e.TicketPrice, &e.Capacity, &e.Images, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (st *PostgresStorage) GetEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := st.pool.Query(ctx, "SELECT "+eventColumns+" FROM events ORDER BY date, start_time")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (st *PostgresStorage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	e, err := scanEvent(st.pool.QueryRow(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (st *PostgresStorage) CreateEvent(ctx context.Context, e *models.Event) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO events (id, title, description, venue, date, start_time, end_time, category, ticket_price, capacity, images, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		e.ID, e.Title, e.Description, e.Venue, e.Date, e.StartTime, e.EndTime,
		e.Category, e.TicketPrice, e.Capacity, e.Images, e.CreatedAt)
	return err
}

func (st *PostgresStorage) UpdateEvent(ctx context.Context, e *models.Event) error {
	_, err := st.pool.Exec(ctx,
		`UPDATE events SET title=$2, description=$3, venue=$4, date=$5, start_time=$6, end_time=$7,
		 category=$8, ticket_price=$9, capacity=$10, images=$11 WHERE id=$1`,
		e.ID, e.Title, e.Description, e.Venue, e.Date, e.StartTime, e.EndTime,
		e.Category, e.TicketPrice, e.Capacity, e.Images)
	return err
}

func (st *PostgresStorage) DeleteEvent(ctx context.Context, id string) error {
	_, err := st.pool.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	return err
}

// =============================================
// ORDERS
// =============================================

const orderColumns = "id, customer_name, customer_email, customer_phone, total_amount, status, poll_url, paynow_reference, created_at"

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.TotalAmount, &o.Status, &o.PollURL, &o.PaynowReference, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (st *PostgresStorage) CreateOrder(ctx context.Context, o *models.Order) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO orders (id, customer_name, customer_email, customer_phone, total_amount, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.TotalAmount, o.Status, o.CreatedAt)
	return err
}

func (st *PostgresStorage) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := scanOrder(st.pool.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (st *PostgresStorage) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := st.pool.Query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (st *PostgresStorage) GetOrderByPollURL(ctx context.Context, pollURL string) (*models.Order, error) {
	o, err := scanOrder(st.pool.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE poll_url = $1", pollURL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (st *PostgresStorage) UpdateOrderStatus(ctx context.Context, id, status string) error {
	_, err := st.pool.Exec(ctx, "UPDATE orders SET status = $2 WHERE id = $1", id, status)
	return err
}

func (st *PostgresStorage) SetOrderPayment(ctx context.Context, id, status, pollURL, reference string) error {
	_, err := st.pool.Exec(ctx,
		"UPDATE orders SET status = $2, poll_url = $3, paynow_reference = $4 WHERE id = $1",
		id, status, pollURL, reference)
	return err
}

func (st *PostgresStorage) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	_, err := st.pool.Exec(ctx,
		`INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		item.ID, item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.Price)
	return err
}

func (st *PostgresStorage) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := st.pool.Query(ctx,
		"SELECT id, order_id, product_id, product_name, quantity, price FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
