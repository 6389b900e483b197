package kafka

// Topics consumed and produced by the assessment domain.
const (
	TopicScanSubmitted = "scan.submitted"
)

// Consumer group IDs.
const (
	ConsumerGroupScanWorkers = "vigil-scan-workers"
)
