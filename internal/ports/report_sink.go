package ports

import "github.com/kobayashik-Faber/shotcheck/internal/domain"

// ReportSink persists the run summary for the user.
type ReportSink interface {
	Write(run domain.RunResult) (path string, err error)
}
