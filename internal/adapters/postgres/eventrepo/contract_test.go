package eventrepo

import (
	"testing"

	"github.com/shababna/engagement-api/internal/adapters/contracttest"
	"github.com/shababna/engagement-api/internal/adapters/postgres/testutil"
	eventrepoport "github.com/shababna/engagement-api/internal/ports/out/eventrepo"
)

func TestContract_PostgresEventRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunEventRepositoryContract(t, func(t *testing.T) eventrepoport.Repository {
		t.Helper()
		testutil.ResetTables(t, pool)
		return NewRepo(pool)
	})
}
