package database

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			startTime, ok := tx.InstanceGet(startTimeKey)
			if !ok {
				return
			}
			recorder.RecordDBQuery(operation, tableName(tx), time.Since(startTime.(time.Time)), queryError(tx))
		}
	}

	return errors.Join(
		cb.Query().Before("gorm:query").Register("metrics:select_before", markStart),
		cb.Query().After("gorm:query").Register("metrics:select_after", after("select")),
		cb.Create().Before("gorm:create").Register("metrics:insert_before", markStart),
		cb.Create().After("gorm:create").Register("metrics:insert_after", after("insert")),
		cb.Update().Before("gorm:update").Register("metrics:update_before", markStart),
		cb.Update().After("gorm:update").Register("metrics:update_after", after("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:delete_before", markStart),
		cb.Delete().After("gorm:delete").Register("metrics:delete_after", after("delete")),
		cb.Row().Before("gorm:row").Register("metrics:row_before", markStart),
		cb.Row().After("gorm:row").Register("metrics:row_after", after("select")),
		cb.Raw().Before("gorm:raw").Register("metrics:raw_before", markStart),
		cb.Raw().After("gorm:raw").Register("metrics:raw_after", after("raw")),
	)
}

func markStart(tx *gorm.DB) {
	tx.InstanceSet(startTimeKey, time.Now())
}

// tableName strips aliases such as "boards b" down to the table
func tableName(tx *gorm.DB) string {
	table := tx.Statement.Table
	if tx.Statement.TableExpr != nil {
		table = tx.Statement.TableExpr.SQL
	}
	if fields := strings.Fields(table); len(fields) > 0 {
		table = fields[0]
	}
	if table == "" || strings.HasPrefix(table, "(") {
		return "unknown"
	}
	return table
}

// queryError ignores not-found, which is an expected outcome and not a failure
func queryError(tx *gorm.DB) error {
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	return tx.Error
}

// StartDBStatsCollector starts periodic DB stats collection. Close the returned channel to stop it.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
