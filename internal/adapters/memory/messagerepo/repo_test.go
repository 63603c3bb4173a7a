package messagerepo_test

import (
	"testing"

	"github.com/shababna/engagement-api/internal/adapters/contracttest"
	memrepo "github.com/shababna/engagement-api/internal/adapters/memory/messagerepo"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

func TestRepoContract(t *testing.T) {
	t.Parallel()
	contracttest.RunMessageRepositoryContract(t, func(t *testing.T) messagerepo.Repository {
		return memrepo.NewRepo()
	})
}
