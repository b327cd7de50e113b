package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"accounts/internal/accounts/models"
	cardsmodels "accounts/internal/cards/models"
	"accounts/pkg/platform/sentinel"
)

// PostgresStore persists customers and accounts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateCustomer(ctx context.Context, c cardsmodels.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, email, mobile_number, create_dt)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, c.CustomerID, c.Name, c.Email, c.MobileNumber, nullDate(c.CreateDt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer %d: %w", c.CustomerID, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateAccount(ctx context.Context, a models.Account) error {
	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address, create_dt)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, a.AccountNumber, a.CustomerID, a.AccountType, a.BranchAddress, nullDate(a.CreateDt))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("account %d: %w", a.AccountNumber, sentinel.ErrAlreadyUsed)
		case isForeignKeyViolation(err):
			return fmt.Errorf("customer %d: %w", a.CustomerID, ErrNotFound)
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindCustomerByID(ctx context.Context, customerID int64) (*cardsmodels.Customer, error) {
	query := `
		SELECT customer_id, name, email, mobile_number, COALESCE(to_char(create_dt, 'YYYY-MM-DD'), '')
		FROM customers
		WHERE customer_id = $1
	`
	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) FindCustomerByMobile(ctx context.Context, mobileNumber string) (*cardsmodels.Customer, error) {
	query := `
		SELECT customer_id, name, email, mobile_number, COALESCE(to_char(create_dt, 'YYYY-MM-DD'), '')
		FROM customers
		WHERE mobile_number = $1
	`
	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, mobileNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer by mobile: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListAccounts(ctx context.Context, customerID int64) ([]models.Account, error) {
	query := `
		SELECT account_number, customer_id, account_type, branch_address, COALESCE(to_char(create_dt, 'YYYY-MM-DD'), '')
		FROM accounts
		WHERE customer_id = $1
		ORDER BY account_number
	`
	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.AccountNumber, &a.CustomerID, &a.AccountType, &a.BranchAddress, &a.CreateDt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

type customerRow interface {
	Scan(dest ...any) error
}

func scanCustomer(row customerRow) (*cardsmodels.Customer, error) {
	var c cardsmodels.Customer
	if err := row.Scan(&c.CustomerID, &c.Name, &c.Email, &c.MobileNumber, &c.CreateDt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Empty dates are stored as NULL rather than failing the DATE cast.
func nullDate(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
