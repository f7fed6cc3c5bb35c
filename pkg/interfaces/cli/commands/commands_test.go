package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/application/services/bomcheck"
	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
	"github.com/vsinha/mpn/pkg/interfaces/cli/output"
	"github.com/vsinha/mpn/pkg/mpn"
)

const bomFixture = `parent_pn,mpn,manufacturer,qty_per,find_number,category,alternate_group,priority
PCB-100,RC0603FR-0710KL,Yageo,4,10,resistor,R10K,0
PCB-100,CRCW060310K0FKEA,Vishay,4,10,resistor,R10K,1
PCB-100,GRM188R71H104KA93D,Murata,2,20,capacitor,,0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestClassifyCommand(t *testing.T) {
	engine := mpn.MustNewEngine()

	t.Run("arguments as json", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewClassifyCommand(Config{MPNs: []string{"RC0603FR-0710KL", "XYZZY"}, Format: "json"}, engine, zap.NewNop(), &out)
		require.NoError(t, cmd.Execute(context.Background()))

		var records []output.Record
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "resistor", records[0].Category)
		assert.Equal(t, "10000", records[0].Attributes[entities.AttrValue])
		assert.Equal(t, "UNKNOWN", records[1].Type)
		assert.Empty(t, records[1].Category)
	})

	t.Run("csv column as text", func(t *testing.T) {
		input := writeFile(t, "parts.csv", "ref,mpn\nR1,RC0603FR-0710KL\nU1,STM32F103C8T6\n")

		var out bytes.Buffer
		cmd := NewClassifyCommand(Config{InputFile: input, Column: "mpn", Format: "text", Verbose: true}, engine, zap.NewNop(), &out)
		require.NoError(t, cmd.Execute(context.Background()))
		assert.Contains(t, out.String(), "STM32F103C8T6")
		assert.Contains(t, out.String(), "Classified: 2/2")
	})

	t.Run("validation", func(t *testing.T) {
		var out bytes.Buffer
		err := NewClassifyCommand(Config{Format: "text"}, engine, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "must specify MPNs")

		err = NewClassifyCommand(Config{MPNs: []string{"X"}, InputFile: "parts.csv"}, engine, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "not both")

		err = NewClassifyCommand(Config{MPNs: []string{"X"}, Format: "xml"}, engine, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "unsupported output format")
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewClassifyCommand(Config{Help: true}, engine, zap.NewNop(), &out).Execute(context.Background()))
		assert.Contains(t, out.String(), "USAGE:")
	})
}

func TestCheckCommand(t *testing.T) {
	checker := bomcheck.NewChecker(mpn.MustNewEngine())
	bomPath := writeFile(t, "bom.csv", bomFixture)

	t.Run("passing BOM", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewCheckCommand(Config{BOMFile: bomPath, Format: "text"}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out)
		require.NoError(t, cmd.Execute(context.Background()))
		assert.Contains(t, out.String(), "Result: PASS")
		assert.Contains(t, out.String(), "CRCW060310K0FKEA")
	})

	t.Run("policy file requires a missing category", func(t *testing.T) {
		policyPath := writeFile(t, "policy.yaml", "required_categories: [microcontroller]\nworkers: 2\n")

		var out bytes.Buffer
		cmd := NewCheckCommand(Config{BOMFile: bomPath, PolicyFile: policyPath, Format: "json"}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out)
		err := cmd.Execute(context.Background())
		require.ErrorIs(t, err, ErrCheckFailed)

		var report bomcheck.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		require.Len(t, report.Errors, 1)
		assert.Equal(t, bomcheck.CodeMissingCategory, report.Errors[0].Code)
	})

	t.Run("errors", func(t *testing.T) {
		var out bytes.Buffer
		err := NewCheckCommand(Config{Format: "text"}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "must specify a -bom file")

		err = NewCheckCommand(Config{BOMFile: filepath.Join(t.TempDir(), "none.csv"), Format: "text"}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "error loading BOM")

		err = NewCheckCommand(Config{BOMFile: bomPath, PolicyFile: writeFile(t, "bad.yaml", "min_score: 3\n"), Format: "text"}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "error loading policy")
	})
}

func TestCheckCommand_Events(t *testing.T) {
	bomPath := writeFile(t, "bom.csv", bomFixture)
	store := events.NewInMemoryEventStore(zap.NewNop())
	checker := bomcheck.NewChecker(mpn.MustNewEngine(), bomcheck.WithEventStore(store))

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewCheckCommand(Config{BOMFile: bomPath, Format: "text", Events: true}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).WithEvents(store)
		require.NoError(t, cmd.Execute(context.Background()))

		text := out.String()
		require.Contains(t, text, "Events:")
		tail := text[strings.Index(text, "Events:"):]
		assert.Contains(t, tail, bomcheck.CheckStartedEvent)
		assert.Contains(t, tail, bomcheck.AlternateSelectedEvent)
		assert.Contains(t, tail, bomcheck.CheckCompletedEvent)
	})

	t.Run("json stream follows the report", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewCheckCommand(Config{BOMFile: bomPath, Format: "json", Events: true}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).WithEvents(store)
		require.NoError(t, cmd.Execute(context.Background()))

		decoder := json.NewDecoder(&out)
		var report bomcheck.Report
		require.NoError(t, decoder.Decode(&report))
		var stream []events.BaseEvent
		require.NoError(t, decoder.Decode(&stream))

		require.NotEmpty(t, stream)
		assert.Equal(t, bomcheck.CheckStartedEvent, stream[0].EventType)
		assert.Equal(t, bomcheck.CheckCompletedEvent, stream[len(stream)-1].EventType)
		assert.Equal(t, report.RunID.String(), stream[0].Stream)
	})

	t.Run("flag without a store", func(t *testing.T) {
		var out bytes.Buffer
		err := NewCheckCommand(Config{BOMFile: bomPath, Format: "text", Events: true}, entities.DefaultBOMPolicy(), checker, zap.NewNop(), &out).Execute(context.Background())
		assert.ErrorContains(t, err, "-events needs an event store")
	})
}
