package otx

import (
	"vigil-srv/internal/intel/repository"
	"vigil-srv/pkg/log"
	pkgOTX "vigil-srv/pkg/otx"
)

type implRepository struct {
	client pkgOTX.IOTX
	hasKey bool
	l      log.Logger
}

// New - Factory function. hasKey marks whether an API key is configured,
// which is surfaced on the overview for diagnostics.
func New(client pkgOTX.IOTX, hasKey bool, l log.Logger) repository.FeedRepository {
	return &implRepository{
		client: client,
		hasKey: hasKey,
		l:      l,
	}
}
