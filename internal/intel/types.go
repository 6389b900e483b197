package intel

const (
	// DefaultDays is the trailing window when the caller gives none.
	DefaultDays = 7
	// MaxDays bounds the trailing window.
	MaxDays = 90
)

type OverviewInput struct {
	Days int
}
