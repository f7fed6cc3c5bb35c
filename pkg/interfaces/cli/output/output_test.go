package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
)

func sampleRecords() []entities.ComponentRecord {
	return []entities.ComponentRecord{
		{
			MPN:          "RC0603FR-0710KL",
			Normalized:   "RC0603FR-0710KL",
			Type:         entities.Resistor,
			Manufacturer: entities.Yageo,
			Attributes: entities.ExtractedAttributes{
				entities.AttrValue:       "10000",
				entities.AttrPackageCode: "0603",
			},
		},
		{MPN: "XYZZY", Normalized: "XYZZY", Type: entities.Unknown},
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(sampleRecords()[0])
	assert.Equal(t, "RESISTOR", r.Type)
	assert.Equal(t, "resistor", r.Category)
	assert.Equal(t, "0603", r.Attributes[entities.AttrPackageCode])

	assert.Empty(t, NewRecord(sampleRecords()[1]).Category)
}

func TestWriteRecords(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteRecords(&buf, sampleRecords(), Config{Format: "text", Verbose: true}))
		assert.Contains(t, buf.String(), "RC0603FR-0710KL")
		assert.Contains(t, buf.String(), entities.AttrPackageCode+"=0603")
		assert.Contains(t, buf.String(), "Classified: 1/2")
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteRecords(&buf, sampleRecords(), Config{Format: "csv"}))
		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "mpn", rows[0][0])
		assert.Equal(t, "UNKNOWN", rows[2][2])
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, WriteRecords(&bytes.Buffer{}, nil, Config{Format: "yaml"}))
	})
}

func TestWriteReport(t *testing.T) {
	report := &bomcheck.Report{
		Lines:      2,
		Classified: 2,
		Coverage:   map[string]int{"resistor": 2},
		Errors: []bomcheck.Issue{{
			Severity: bomcheck.SeverityError,
			Code:     bomcheck.CodeIncompatibleAlternate,
			Line:     2,
			ParentPN: "PCB-100",
			MPN:      "RC0603FR-0712KL",
			Message:  "RC0603FR-0712KL is not interchangeable with primary RC0603FR-0710KL",
			Reasons:  []string{"FAIL value: 10000 vs 12000"},
		}},
		Selections: []bomcheck.Selection{{ParentPN: "PCB-100", Group: "R10K", Primary: "RC0603FR-0710KL"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, report, Config{Format: "text", Verbose: true}))
	text := buf.String()
	assert.Contains(t, text, "Errors: 1")
	assert.Contains(t, text, "FAIL value: 10000 vs 12000")
	assert.Contains(t, text, "(none)")
	assert.Contains(t, text, "resistor")
	assert.True(t, strings.HasSuffix(text, "Result: FAIL\n"))

	assert.Error(t, WriteReport(&buf, report, Config{Format: "csv"}))
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "mpn_test_total", Help: "Test counter."})
	reg.MustRegister(counter)
	counter.Add(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, families))
	assert.Contains(t, buf.String(), "# TYPE mpn_test_total counter")
	assert.Contains(t, buf.String(), "mpn_test_total 3")
}

func TestWriteEvents(t *testing.T) {
	store := events.NewInMemoryEventStore(nil)
	require.NoError(t, store.AppendEvent("run-1", events.NewEvent(bomcheck.CheckStartedEvent, "run-1", bomcheck.CheckStarted{Lines: 2})))
	require.NoError(t, store.AppendEvent("run-1", events.NewEvent(bomcheck.CheckCompletedEvent, "run-1", bomcheck.CheckCompleted{Valid: true})))
	stream, err := store.ReadEvents("run-1", 0)
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, WriteEvents(&text, stream, Config{Format: "text"}))
	assert.Contains(t, text.String(), "Events:")
	assert.Contains(t, text.String(), "  1 ")
	assert.Contains(t, text.String(), bomcheck.CheckStartedEvent)
	assert.Contains(t, text.String(), bomcheck.CheckCompletedEvent)

	var js bytes.Buffer
	require.NoError(t, WriteEvents(&js, stream, Config{Format: "json"}))
	assert.Contains(t, js.String(), `"type": "bom.check.completed"`)
	assert.Contains(t, js.String(), `"version": 2`)

	assert.Error(t, WriteEvents(&js, stream, Config{Format: "csv"}))
}
