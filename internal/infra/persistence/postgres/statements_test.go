package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"dabeli/internal/domain/entity"
	"dabeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// dryRunDB renders statements without a server and records each one.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=dabeli dbname=dabeli sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var statements []string
	record := func(tx *gorm.DB) {
		statements = append(statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}

	callbacks := db.Callback()
	require.NoError(t, callbacks.Create().After("gorm:create").Register("test:record", record))
	require.NoError(t, callbacks.Query().After("gorm:query").Register("test:record", record))
	require.NoError(t, callbacks.Update().After("gorm:update").Register("test:record", record))
	require.NoError(t, callbacks.Delete().After("gorm:delete").Register("test:record", record))
	require.NoError(t, callbacks.Row().After("gorm:row").Register("test:record", record))

	return db, &statements
}

func findStatement(statements []string, prefix string) string {
	for _, stmt := range statements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}

	return ""
}

func TestResetTokenModel_OneTokenPerCustomer(t *testing.T) {
	s, err := schema.Parse(&model.ResetTokenModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var unique *schema.Index
	for _, idx := range s.ParseIndexes() {
		if idx.Name == "idx_reset_tokens_customer" {
			unique = idx
		}
	}

	require.NotNil(t, unique)
	assert.Equal(t, "UNIQUE", unique.Class)
	require.Len(t, unique.Fields, 1)
	assert.Equal(t, "customer_id", unique.Fields[0].DBName)
}

func TestResetTokenRepository_Replace_UpsertsOnCustomer(t *testing.T) {
	db, statements := dryRunDB(t)
	repo := NewResetTokenRepository(db)
	customerID := uuid.New()

	err := repo.Replace(context.Background(), entity.NewResetToken(customerID, "code-hash"), time.Hour)
	// The upsert reads its RETURNING row, which a dry run cannot produce.
	assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)

	purge := findStatement(*statements, `DELETE FROM "password_reset_tokens"`)
	assert.Contains(t, purge, "expires_at <= NOW()")

	upsert := findStatement(*statements, "INSERT INTO password_reset_tokens")
	require.NotEmpty(t, upsert)
	assert.Contains(t, upsert, "'"+customerID.String()+"'")
	assert.Contains(t, upsert, "'code-hash'")
	assert.Contains(t, upsert, "ON CONFLICT (customer_id) DO UPDATE SET")
	assert.Contains(t, upsert, "attempts = 0")
	assert.Contains(t, upsert, "NOW() + make_interval(secs => 3600)")
}

func TestResetTokenRepository_FindLive_UsesDatabaseClock(t *testing.T) {
	db, statements := dryRunDB(t)
	repo := NewResetTokenRepository(db)
	customerID := uuid.New()

	_, err := repo.FindLive(context.Background(), customerID)
	require.NoError(t, err)

	lookup := findStatement(*statements, "SELECT")
	require.NotEmpty(t, lookup)
	assert.Contains(t, lookup, customerID.String())
	assert.Contains(t, lookup, `"attempts" < 5`)
	assert.Contains(t, lookup, "expires_at > NOW()")
}

func TestMenuUpdate_LeavesPlacedOrdersUntouched(t *testing.T) {
	db, statements := dryRunDB(t)
	ctx := context.Background()

	order := &entity.Order{
		CustomerID:    uuid.New(),
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		OrderType:     entity.OrderTypePickup,
		Items:         []entity.OrderItem{{Name: "Dabeli", Price: 40, Quantity: 2}},
		TotalPrice:    80,
		Status:        entity.OrderStatusPending,
	}
	require.NoError(t, NewOrderRepository(db).Create(ctx, order))

	insert := findStatement(*statements, `INSERT INTO "orders"`)
	require.NotEmpty(t, insert)
	assert.Contains(t, insert, `"name":"Dabeli"`)
	assert.Contains(t, insert, `"price":40`)

	placed := len(*statements)
	item := &entity.MenuItem{ID: uuid.New(), Name: "Dabeli", Price: 55, Category: "Dabeli", InStock: true}
	// No row matches in a dry run; only the rendered statement matters.
	_ = NewMenuRepository(db).Update(ctx, item)

	edits := (*statements)[placed:]
	require.NotEmpty(t, edits)
	for _, stmt := range edits {
		assert.True(t, strings.HasPrefix(stmt, `UPDATE "menu_items"`), stmt)
		assert.NotContains(t, stmt, "orders")
	}

	assert.Equal(t, 40.0, order.Items[0].Price)
	assert.Equal(t, 80.0, order.TotalPrice)
}
