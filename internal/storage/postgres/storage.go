package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage relies on.
// Tests substitute a pgxmock pool through it.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped out by tests to inject a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type showRepository struct {
	storage *Storage
}

type mediaRepository struct {
	storage *Storage
}

type messageRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization. Numeric columns are
// scanned into shopspring decimals via the pgx decimal adapter registered
// on every new connection.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pgPool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Shows() repository.ShowRepository {
	return &showRepository{storage: s}
}

func (s *Storage) Media() repository.MediaRepository {
	return &mediaRepository{storage: s}
}

func (s *Storage) Messages() repository.MessageRepository {
	return &messageRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            type TEXT NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shows (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            venue TEXT NOT NULL,
            date DATE NOT NULL,
            time TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            ticket_url TEXT NOT NULL DEFAULT '',
            featured BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS media (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            type TEXT NOT NULL,
            url TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            duration TEXT NOT NULL DEFAULT '',
            featured BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS messages (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            event_type TEXT NOT NULL DEFAULT '',
            event_date TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
            owner_id TEXT NOT NULL,
            product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL,
            added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            PRIMARY KEY (owner_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            total NUMERIC(10,2) NOT NULL,
            payment_method TEXT NOT NULL,
            payment_ref TEXT NOT NULL DEFAULT '',
            payment_status TEXT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL,
            title TEXT NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL,
            quantity INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(customer_email, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_lines_added ON cart_lines(added_at)`,
		`CREATE INDEX IF NOT EXISTS idx_shows_date ON shows(date)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (title, type, price, available)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, product.Title, product.Type, product.Price, product.Available).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, title, type, price, available, created_at, updated_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Type, &p.Price, &p.Available, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	query := `SELECT id, title, type, price, available, created_at, updated_at
              FROM products ORDER BY created_at DESC`
	if availableOnly {
		query = `SELECT id, title, type, price, available, created_at, updated_at
                 FROM products WHERE available ORDER BY created_at DESC`
	}

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Type, &p.Price, &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `UPDATE products SET title=$1, type=$2, price=$3, available=$4, updated_at=NOW()
                   WHERE id=$5
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, product.Title, product.Type, product.Price, product.Available, product.ID).
		Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ShowRepository implementation ---

func (r *showRepository) Create(ctx context.Context, show model.Show) (*model.Show, error) {
	const query = `INSERT INTO shows (title, venue, date, time, description, ticket_url, featured)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		show.Title, show.Venue, show.Date, show.Time, show.Description, show.TicketURL, show.Featured).
		Scan(&show.ID, &show.CreatedAt, &show.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepository) GetByID(ctx context.Context, id int64) (*model.Show, error) {
	const query = `SELECT id, title, venue, date, time, description, ticket_url, featured, created_at, updated_at
                   FROM shows WHERE id=$1`
	var s model.Show
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.Title, &s.Venue, &s.Date, &s.Time, &s.Description, &s.TicketURL, &s.Featured, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *showRepository) List(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
	query := `SELECT id, title, venue, date, time, description, ticket_url, featured, created_at, updated_at
              FROM shows ORDER BY date ASC`
	if featuredOnly {
		query = `SELECT id, title, venue, date, time, description, ticket_url, featured, created_at, updated_at
                 FROM shows WHERE featured ORDER BY date ASC`
	}

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.Title, &s.Venue, &s.Date, &s.Time, &s.Description, &s.TicketURL, &s.Featured, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *showRepository) Update(ctx context.Context, show model.Show) (*model.Show, error) {
	const query = `UPDATE shows SET title=$1, venue=$2, date=$3, time=$4, description=$5, ticket_url=$6, featured=$7, updated_at=NOW()
                   WHERE id=$8
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		show.Title, show.Venue, show.Date, show.Time, show.Description, show.TicketURL, show.Featured, show.ID).
		Scan(&show.CreatedAt, &show.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &show, nil
}

func (r *showRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM shows WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MediaRepository implementation ---

func (r *mediaRepository) Create(ctx context.Context, item model.MediaItem) (*model.MediaItem, error) {
	const query = `INSERT INTO media (title, type, url, description, duration, featured)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.Title, item.Type, item.URL, item.Description, item.Duration, item.Featured).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*model.MediaItem, error) {
	const query = `SELECT id, title, type, url, description, duration, featured, created_at
                   FROM media WHERE id=$1`
	var m model.MediaItem
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Type, &m.URL, &m.Description, &m.Duration, &m.Featured, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) List(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error) {
	query := `SELECT id, title, type, url, description, duration, featured, created_at
              FROM media ORDER BY created_at DESC`
	if featuredOnly {
		query = `SELECT id, title, type, url, description, duration, featured, created_at
                 FROM media WHERE featured ORDER BY created_at DESC`
	}

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MediaItem
	for rows.Next() {
		var m model.MediaItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Type, &m.URL, &m.Description, &m.Duration, &m.Featured, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *mediaRepository) Update(ctx context.Context, item model.MediaItem) (*model.MediaItem, error) {
	const query = `UPDATE media SET title=$1, type=$2, url=$3, description=$4, duration=$5, featured=$6
                   WHERE id=$7
                   RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.Title, item.Type, item.URL, item.Description, item.Duration, item.Featured, item.ID).
		Scan(&item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM media WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MessageRepository implementation ---

func (r *messageRepository) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	const query = `INSERT INTO messages (name, email, phone, event_type, event_date, message, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`
	if msg.Status == "" {
		msg.Status = model.MessageStatusNew
	}
	err := r.storage.pool.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.EventType, msg.EventDate, msg.Message, msg.Status).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error) {
	query := `SELECT id, name, email, phone, event_type, event_date, message, status, created_at
              FROM messages ORDER BY created_at DESC`
	args := []any{}
	if status != "" {
		query = `SELECT id, name, email, phone, event_type, event_date, message, status, created_at
                 FROM messages WHERE status=$1 ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.EventType, &m.EventDate, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	const query = `UPDATE messages SET status=$1 WHERE id=$2
                   RETURNING id, name, email, phone, event_type, event_date, message, status, created_at`
	var m model.ContactMessage
	err := r.storage.pool.QueryRow(ctx, query, status, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.EventType, &m.EventDate, &m.Message, &m.Status, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Get(ctx context.Context, ownerID string) (*model.Cart, error) {
	const query = `SELECT product_id, title, quantity, unit_price, added_at
                   FROM cart_lines WHERE owner_id=$1 ORDER BY added_at`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := &model.Cart{OwnerID: ownerID}
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ProductID, &l.Title, &l.Quantity, &l.UnitPrice, &l.AddedAt); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) AddLine(ctx context.Context, ownerID string, productID int64, title string, unitPrice decimal.Decimal, quantity int) error {
	const query = `INSERT INTO cart_lines (owner_id, product_id, title, quantity, unit_price)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (owner_id, product_id)
                   DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity, added_at = now()`
	_, err := r.storage.pool.Exec(ctx, query, ownerID, productID, title, quantity, unitPrice)
	return err
}

func (r *cartRepository) SetQuantity(ctx context.Context, ownerID string, productID int64, quantity int) error {
	const query = `UPDATE cart_lines SET quantity=$1, added_at=now() WHERE owner_id=$2 AND product_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, quantity, ownerID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) RemoveLine(ctx context.Context, ownerID string, productID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id=$1 AND product_id=$2`, ownerID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id=$1`, ownerID)
	return err
}

func (r *cartRepository) DeleteStale(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	const query = `DELETE FROM cart_lines
                   WHERE (owner_id, product_id) IN (
                       SELECT owner_id, product_id FROM cart_lines
                       WHERE added_at < $1
                       LIMIT $2
                   )`
	tag, err := r.storage.pool.Exec(ctx, query, cutoff, limit)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		ids := make([]int64, 0, len(order.Lines))
		for _, line := range order.Lines {
			ids = append(ids, line.ProductID)
		}

		// Lock the referenced product rows so a concurrent availability
		// flip cannot slip between the check and the insert.
		const lockQuery = `SELECT id, available FROM products WHERE id = ANY($1) FOR UPDATE`
		rows, err := tx.Query(ctx, lockQuery, ids)
		if err != nil {
			return err
		}

		available := make(map[int64]bool, len(ids))
		for rows.Next() {
			var id int64
			var ok bool
			if err := rows.Scan(&id, &ok); err != nil {
				rows.Close()
				return err
			}
			available[id] = ok
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, line := range order.Lines {
			ok, found := available[line.ProductID]
			if !found {
				return domainErrors.ErrNotFound
			}
			if !ok {
				return domainErrors.ErrProductUnavailable
			}
		}

		const insertOrder = `INSERT INTO orders
                (number, customer_name, customer_email, total, payment_method, payment_ref, payment_status, status)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id, created_at, updated_at`
		err = tx.QueryRow(ctx, insertOrder,
			order.Number, order.CustomerName, order.CustomerEmail, order.Total,
			order.PaymentMethod, order.PaymentRef, order.PaymentStatus, order.Status).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		const insertLine = `INSERT INTO order_lines (order_id, product_id, title, unit_price, quantity)
                            VALUES ($1, $2, $3, $4, $5)
                            RETURNING id`
		for i := range order.Lines {
			order.Lines[i].OrderID = order.ID
			err := tx.QueryRow(ctx, insertLine,
				order.ID, order.Lines[i].ProductID, order.Lines[i].Title,
				order.Lines[i].UnitPrice, order.Lines[i].Quantity).
				Scan(&order.Lines[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT id, number, customer_name, customer_email, total,
                          payment_method, payment_ref, payment_status, status, created_at, updated_at
                   FROM orders WHERE number=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, number).
		Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.Total,
			&o.PaymentMethod, &o.PaymentRef, &o.PaymentStatus, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.linesFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	const query = `SELECT id, number, customer_name, customer_email, total,
                          payment_method, payment_ref, payment_status, status, created_at, updated_at
                   FROM orders WHERE customer_email=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, email)
}

func (r *orderRepository) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT id, number, customer_name, customer_email, total,
                     payment_method, payment_ref, payment_status, status, created_at, updated_at
              FROM orders ORDER BY created_at DESC`
	if status != "" {
		query = `SELECT id, number, customer_name, customer_email, total,
                        payment_method, payment_ref, payment_status, status, created_at, updated_at
                 FROM orders WHERE status=$1 ORDER BY created_at DESC`
		return r.listOrders(ctx, query, status)
	}
	return r.listOrders(ctx, query)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.Total,
			&o.PaymentMethod, &o.PaymentRef, &o.PaymentStatus, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		lines, err := r.linesFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Lines = lines
	}
	return result, nil
}

func (r *orderRepository) linesFor(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	const query = `SELECT id, order_id, product_id, title, unit_price, quantity
                   FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Title, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, selectQuery, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !(model.Order{Status: current}).CanTransitionTo(status) {
			return domainErrors.ErrInvalidOrderStatus
		}

		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2
                             RETURNING id, number, customer_name, customer_email, total,
                                       payment_method, payment_ref, payment_status, status, created_at, updated_at`
		var o model.Order
		err := tx.QueryRow(ctx, updateQuery, status, id).
			Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.Total,
				&o.PaymentMethod, &o.PaymentRef, &o.PaymentStatus, &o.Status, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}
		updated = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	lines, err := r.linesFor(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	updated.Lines = lines
	return updated, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
