package breach

// MaxRiskScore caps the breach risk score.
const MaxRiskScore = 10

type CheckInput struct {
	Email string
}
