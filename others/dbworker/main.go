// dbworker demonstrates eliminating the worker-id collision risk that comes
// with auto-derivation: each process claims a distinct worker id from a MySQL
// counter before constructing its generator. The generator itself stays
// coordination-free; all coordination happens once, at startup.
//
// Required schema:
//
//	CREATE TABLE worker_alloc (
//	    service     VARCHAR(64) NOT NULL PRIMARY KEY,
//	    next_worker BIGINT      NOT NULL DEFAULT 0
//	);
//	INSERT INTO worker_alloc (service, next_worker) VALUES ('order-service', 0);
//
// Note that a plain incrementing counter recycles worker ids after 1024
// claims; deployments restarting processes frequently should add lease
// bookkeeping on top.
package main

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lab2439/snowid"
)

// AllocDAO encapsulates the worker-id allocation queries.
type AllocDAO struct {
	db *sql.DB
}

// NewAllocDAO creates a DAO with the provided database DSN.
func NewAllocDAO(dsn string) (*AllocDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &AllocDAO{db: db}, nil
}

// ClaimWorkerID atomically reserves the next worker id for the given service.
// The update-then-read transaction guarantees no two claimants observe the
// same counter value.
func (dao *AllocDAO) ClaimWorkerID(ctx context.Context, service string) (int64, error) {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE worker_alloc SET next_worker = next_worker + 1 WHERE service = ?", service)
	if err != nil {
		return 0, err
	}

	var next int64
	err = tx.QueryRowContext(ctx,
		"SELECT next_worker FROM worker_alloc WHERE service = ?", service).Scan(&next)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	// next_worker is a monotone counter; fold it into the 10-bit space.
	return (next - 1) % (snowid.MaxWorkerID + 1), nil
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	dao, err := NewAllocDAO(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	workerID, err := dao.ClaimWorkerID(ctx, "order-service")
	if err != nil {
		log.Fatalf("claim worker id: %v", err)
	}
	log.Printf("claimed worker id %d from MySQL", workerID)

	gen, err := snowid.NewGeneratorWithWorkerID(workerID)
	if err != nil {
		log.Fatal(err)
	}

	var wg sync.WaitGroup
	start := time.Now()

	// Simulate 10 concurrent goroutines, each drawing 500 IDs
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				id := gen.NextID()
				if id.WorkerID() != workerID {
					log.Fatalf("worker id drifted: got %d, want %d", id.WorkerID(), workerID)
				}
			}
		}()
	}

	wg.Wait()
	log.Printf("generated 5000 IDs on worker %d in %s", workerID, time.Since(start))
}
