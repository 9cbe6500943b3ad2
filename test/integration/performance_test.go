package integration

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/iwvelando/property-simulator/internal/config"
	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/testutil"
	"go.uber.org/zap"
)

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	logger := zap.NewNop()

	start := time.Now()
	conf, err := config.LoadConfiguration(testSimulationFile)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	if _, err := simulation.RunWithFixedTime(logger, conf.Simulation, testutil.FixedNow); err != nil {
		t.Fatalf("RunWithFixedTime failed: %v", err)
	}
	simulateTime := time.Since(start)

	start = time.Now()
	if _, err := simulation.Compare(logger, conf.Simulation, testutil.FixedNow); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	compareTime := time.Since(start)

	start = time.Now()
	if _, err := conf.LoanSchedule(logger); err != nil {
		t.Fatalf("LoanSchedule failed: %v", err)
	}
	scheduleTime := time.Since(start)

	totalTime := loadTime + simulateTime + compareTime + scheduleTime

	t.Logf("Performance metrics:")
	t.Logf("  Load config: %v", loadTime)
	t.Logf("  Simulate: %v", simulateTime)
	t.Logf("  Compare: %v", compareTime)
	t.Logf("  Schedule: %v", scheduleTime)
	t.Logf("  Total time: %v", totalTime)

	if totalTime > 5*time.Second {
		t.Errorf("Total processing time %v exceeds 5 second threshold", totalTime)
	}
}

// TestDataConsistency validates that multiple runs produce identical results
func TestDataConsistency(t *testing.T) {
	conf, err := config.LoadConfiguration(testSimulationFile)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	first, err := simulation.RunWithFixedTime(zap.NewNop(), conf.Simulation, testutil.FixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := simulation.RunWithFixedTime(zap.NewNop(), conf.Simulation, testutil.FixedNow)
		if err != nil {
			t.Fatalf("RunWithFixedTime failed on iteration %d: %v", i, err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("iteration %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	conf, err := config.LoadConfiguration(testSimulationFile)
	if err != nil {
		b.Fatalf("LoadConfiguration failed: %v", err)
	}
	logger := zap.NewNop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simulation.RunWithFixedTime(logger, conf.Simulation, testutil.FixedNow); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	conf, err := config.LoadConfiguration(testSimulationFile)
	if err != nil {
		b.Fatalf("LoadConfiguration failed: %v", err)
	}
	logger := zap.NewNop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simulation.Compare(logger, conf.Simulation, testutil.FixedNow); err != nil {
			b.Fatal(err)
		}
	}
}
