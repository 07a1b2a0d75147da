package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/inputtree/internal/config"
	"github.com/alexanderramin/inputtree/internal/repository"
	"github.com/alexanderramin/inputtree/internal/service"
	"github.com/alexanderramin/inputtree/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires an App backed by an in-memory store with sequential IDs.
func testApp(t *testing.T, mutate ...func(*config.Config)) (*App, *repository.MemoryForestRepo) {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	store := testutil.NewTestStore(t, nil)
	return &App{
		Forest: service.NewForestService(store, testutil.NewTestFactory(), cfg),
	}, store
}
