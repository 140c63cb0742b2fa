package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUpdateDBStats(t *testing.T) {
	m := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{
		MaxOpenConnections: 25,
		OpenConnections:    4,
		InUse:              1,
		Idle:               3,
		WaitCount:          10,
		WaitDuration:       2 * time.Second,
	})
	assert.Equal(t, float64(4), getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, float64(25), getGaugeValue(t, m.DBConnectionsMax))
	assert.Equal(t, float64(10), getCounterValue(t, m.DBConnectionWaitTotal))

	// Cumulative stats only add the difference
	m.UpdateDBStats(sql.DBStats{WaitCount: 12, WaitDuration: 3 * time.Second})
	assert.Equal(t, float64(12), getCounterValue(t, m.DBConnectionWaitTotal))
	assert.InDelta(t, 3.0, getCounterValue(t, m.DBConnectionWaitDuration), 1e-9)

	// Ignored when the argument is not sql.DBStats
	m.UpdateDBStats("bogus")
	assert.Equal(t, float64(12), getCounterValue(t, m.DBConnectionWaitTotal))
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("QUERY", "boards", 5*time.Millisecond, nil)
	m.RecordDBQuery("create", "boards", time.Millisecond, errors.New("constraint"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("create", "boards")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query", "boards")))
}

func TestRecordExternalAPICall(t *testing.T) {
	m := getTestMetrics()

	m.RecordExternalAPICall("s3", "PutObject", 200, 10*time.Millisecond, nil)
	m.RecordExternalAPICall("s3", "GetObject", 404, 10*time.Millisecond, errors.New("NoSuchKey"))
	m.RecordExternalAPICall("s3", "PutObject", 0, time.Second, errors.New("dial tcp: connection refused"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExternalAPIRequestsTotal.WithLabelValues("s3", "PutObject", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExternalAPIErrors.WithLabelValues("s3", "not_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExternalAPIErrors.WithLabelValues("s3", "connection_refused")))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		status int
		err    error
		want   string
	}{
		{400, nil, "bad_request"},
		{403, nil, "forbidden"},
		{412, nil, "conflict"},
		{503, nil, "throttled"},
		{500, nil, "server_error"},
		{0, errors.New("context deadline exceeded"), "timeout"},
		{0, errors.New("lookup minio: no such host"), "dns_error"},
		{0, errors.New("weird"), "network_error"},
		{0, nil, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getErrorType(tt.status, tt.err))
	}
}
