package recorder

import "GemSentinel/internal/model"

// Recorder journals scan results for external tooling. Nothing written here
// is read back by the screener.
type Recorder interface {
	RecordScan(result *model.ScanResult) error
	Close() error
}
