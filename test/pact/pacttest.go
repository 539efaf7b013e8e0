//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-shopper"

	StateCatalogSeeded  = "catalog seeded and cart empty"
	StateCartHasSneaker = "cart holds one pair of sneakers"
	StateProductMissing = "no product with id 404"
)

const (
	ExistingProductID int64 = 1
	DressProductID    int64 = 3
	SneakerProductID  int64 = 6
	MissingProductID  int64 = 404

	ExampleUPIReference = "PACT-TXN-001"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the shopper consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload is the seed entry for ExistingProductID.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":    ExistingProductID,
		"name":  "Classic White Tee",
		"price": "25.00",
		"image": "https://placehold.co/300x200/333/FFF?text=White+Tee",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
