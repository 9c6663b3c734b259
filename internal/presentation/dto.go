package presentation

import (
	"time"

	"github.com/zjrosen/xroot/internal/history"
	"github.com/zjrosen/xroot/internal/operation"
)

// OperationDTO represents a catalog entry for presentation.
type OperationDTO struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FromDescriptor converts a catalog descriptor to a DTO.
func FromDescriptor(d operation.Descriptor) OperationDTO {
	return OperationDTO{
		ID:          d.ID,
		Category:    string(d.Category),
		Label:       d.Category.Label(),
		Description: d.Description,
	}
}

// FromDescriptors converts a descriptor list, preserving order.
func FromDescriptors(descs []operation.Descriptor) []OperationDTO {
	out := make([]OperationDTO, len(descs))
	for i, d := range descs {
		out[i] = FromDescriptor(d)
	}
	return out
}

// ExecutionDTO represents one history entry.
type ExecutionDTO struct {
	ID          string    `json:"id"`
	Operation   string    `json:"operation"`
	Category    string    `json:"category"`
	Success     bool      `json:"success"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	InputBytes  int       `json:"input_bytes"`
	OutputBytes int       `json:"output_bytes"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntry converts a history entry to a DTO.
func FromEntry(e history.Entry) ExecutionDTO {
	return ExecutionDTO{
		ID:          e.ID.String(),
		Operation:   e.Operation,
		Category:    e.Category,
		Success:     e.Success,
		ErrorKind:   e.ErrorKind,
		InputBytes:  e.InputBytes,
		OutputBytes: e.OutputBytes,
		DurationMs:  e.DurationMs,
		CreatedAt:   e.CreatedAt,
	}
}

// StatsDTO represents aggregated history for one operation.
type StatsDTO struct {
	Operation string    `json:"operation"`
	Total     int       `json:"total"`
	Failures  int       `json:"failures"`
	AvgMs     float64   `json:"avg_ms"`
	LastRunAt time.Time `json:"last_run_at"`
}

// FromStats converts aggregated stats to a DTO.
func FromStats(s history.OperationStats) StatsDTO {
	return StatsDTO(s)
}
