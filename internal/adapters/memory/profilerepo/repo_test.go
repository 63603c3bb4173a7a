package profilerepo_test

import (
	"testing"

	"github.com/shababna/engagement-api/internal/adapters/contracttest"
	memrepo "github.com/shababna/engagement-api/internal/adapters/memory/profilerepo"
	"github.com/shababna/engagement-api/internal/ports/out/profilerepo"
)

func TestRepoContract(t *testing.T) {
	t.Parallel()
	contracttest.RunProfileRepositoryContract(t, func(t *testing.T) profilerepo.Repository {
		return memrepo.NewRepo()
	})
}
