package hibp

import (
	"vigil-srv/internal/breach/repository"
	pkgHIBP "vigil-srv/pkg/hibp"
	"vigil-srv/pkg/log"
)

type implRepository struct {
	client pkgHIBP.IHIBP
	l      log.Logger
}

// New - Factory function
func New(client pkgHIBP.IHIBP, l log.Logger) repository.LookupRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
