//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ReferralFixture struct {
	SalonID     uuid.UUID
	ReferrerID  uuid.UUID
	Code        string
	ServiceName string
	FeeCents    int64
}

func CreateSalon(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO salons (id, name, email) VALUES ($1, $2, $3)", id, name, email)
	require.NoError(t, err)
	return id
}

func CreateReferrer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO referrers (id, name, email) VALUES ($1, $2, $3)", id, name, email)
	require.NoError(t, err)
	return id
}

func CreateReferralOffer(t *testing.T, db DBLike, code string, salonID, referrerID uuid.UUID, service string, feeCents int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO referral_offers (code, referrer_id, salon_id, service_name, fee_cents) VALUES ($1, $2, $3, $4, $5)",
		code, referrerID, salonID, service, feeCents)
	require.NoError(t, err)
}

// SeedReferral creates a salon, a referrer and the offer linking them.
func SeedReferral(t *testing.T, db DBLike) ReferralFixture {
	t.Helper()

	f := ReferralFixture{
		SalonID:     CreateSalon(t, db, "Studio Nine", "salon@example.com"),
		ReferrerID:  CreateReferrer(t, db, "Riley", "riley@example.com"),
		Code:        "RILEY-" + strings.ToUpper(uuid.NewString()[:8]),
		ServiceName: "Balayage",
		FeeCents:    15000,
	}
	CreateReferralOffer(t, db, f.Code, f.SalonID, f.ReferrerID, f.ServiceName, f.FeeCents)
	return f
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
