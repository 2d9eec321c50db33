package response

import (
	"fotoeventos/internal/domain/scheduling"
)

type DiffEntryResponse struct {
	Label    string `json:"label"`
	Before   string `json:"before"`
	After    string `json:"after"`
	Severity string `json:"severity"`
}

// ConfirmationRequiredResponse is the 409 body returned when an update
// carries strong changes and the caller did not set confirmed=true. The
// caller is expected to show the changes and resubmit with confirmation.
type ConfirmationRequiredResponse struct {
	Code            string              `json:"code"`
	Message         string              `json:"message"`
	HasStrongChange bool                `json:"has_strong_change"`
	Changes         []DiffEntryResponse `json:"changes"`
}

func FromDiffReport(code, message string, report *scheduling.DiffReport) ConfirmationRequiredResponse {
	out := ConfirmationRequiredResponse{Code: code, Message: message}
	if report == nil {
		return out
	}
	out.HasStrongChange = report.HasStrongChange
	out.Changes = make([]DiffEntryResponse, 0, len(report.Entries))
	for _, e := range report.Entries {
		out.Changes = append(out.Changes, DiffEntryResponse{
			Label:    e.Label,
			Before:   e.Before,
			After:    e.After,
			Severity: string(e.Severity),
		})
	}
	return out
}
