package integration

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/config"
	"github.com/iwvelando/interest-calculator/internal/report"
	"github.com/iwvelando/interest-calculator/internal/session"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"github.com/iwvelando/interest-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func loadTestConfig(t *testing.T) *config.Configuration {
	t.Helper()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("unexpected configuration warnings: %v", warnings)
	}
	return conf
}

func newSession(conf *config.Configuration) *session.Session {
	logger := zap.NewNop()
	return session.New(logger,
		session.WithDefaultCurrency(conf.Defaults.Currency),
		session.WithExporter(report.NewWriter(logger, conf.Export.ReportOptions())),
	)
}

// TestConfiguredSessionEndToEnd runs a calculation the way the CLI does:
// configuration defaults, session, formatted output and export.
func TestConfiguredSessionEndToEnd(t *testing.T) {
	conf := loadTestConfig(t)
	sess := newSession(conf)

	form := conf.ApplyDefaults(calculator.Form{Principal: "1000", Rate: "10", Time: "1", Kind: conf.Defaults.Kind})
	res, err := sess.Calculate(form)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if res.Kind != calculator.Compound || res.Frequency != calculator.Quarterly || res.Currency != "€" {
		t.Fatalf("configuration defaults not applied: %+v", res)
	}

	total := testutil.FindField(res.Fields(), "Total Amount")
	if total == nil {
		t.Fatal("expected a Total Amount field")
	}
	expected := 1000 * math.Pow(1.025, 4)
	if math.Abs(total.Value-expected) > constants.CurrencyTolerance {
		t.Errorf("Total Amount = %.4f, expected %.4f", total.Value, expected)
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, conf.Output.Format, res); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "compound")
	if err := sess.Export(path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	for _, name := range []string{"compound.pdf", "compound" + constants.ChartSidecarSuffix} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

// TestFailedRecalculationBlocksExport checks that a failed calculation never
// leaves the previous figures exportable.
func TestFailedRecalculationBlocksExport(t *testing.T) {
	conf := loadTestConfig(t)
	sess := newSession(conf)

	if _, err := sess.Calculate(conf.ApplyDefaults(calculator.Form{Principal: "100000", Rate: "12", Time: "5", Kind: "EMI"})); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if _, err := sess.Calculate(conf.ApplyDefaults(calculator.Form{Principal: "100000", Rate: "12", Time: "0.05", Kind: "EMI"})); err == nil {
		t.Fatal("expected a sub-month EMI to fail")
	}

	path := filepath.Join(t.TempDir(), "stale.pdf")
	if err := sess.Export(path); err != session.ErrNoResult {
		t.Fatalf("Export() error = %v, expected ErrNoResult", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written, stat error = %v", err)
	}
}

// TestSampleResultsAcrossFormats renders every kind in every output format.
func TestSampleResultsAcrossFormats(t *testing.T) {
	formats := []string{constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatCSV}

	for _, res := range testutil.SampleResults(t) {
		for _, format := range formats {
			var buf bytes.Buffer
			if err := output.Write(&buf, format, res); err != nil {
				t.Fatalf("Write(%s, %s) error = %v", format, res.Kind, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Write(%s, %s) produced no output", format, res.Kind)
			}
		}
	}
}
