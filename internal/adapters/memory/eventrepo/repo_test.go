package eventrepo_test

import (
	"testing"

	"github.com/shababna/engagement-api/internal/adapters/contracttest"
	memrepo "github.com/shababna/engagement-api/internal/adapters/memory/eventrepo"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
)

func TestRepoContract(t *testing.T) {
	t.Parallel()
	contracttest.RunEventRepositoryContract(t, func(t *testing.T) eventrepo.Repository {
		return memrepo.NewRepo()
	})
}
