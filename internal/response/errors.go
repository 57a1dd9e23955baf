package response

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrOutOfRange       ErrCode = "OUT_OF_RANGE"
	ErrReferenceMissing ErrCode = "REFERENCE_MISSING"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound    ErrCode = "NOT_FOUND"
	ErrDuplicateID ErrCode = "DUPLICATE_ID"
	ErrCancelled   ErrCode = "CANCELLED"

	// ─── Persistence ───────────────────────────────────────────────────
	ErrPersistence ErrCode = "PERSISTENCE_ERROR"
	ErrLoadFailed  ErrCode = "LOAD_FAILED"

	// ─── Internal ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrOutOfRange:
		return "Score must be between 0 and 100."
	case ErrReferenceMissing:
		return "Referenced record does not exist."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Record not found."
	case ErrDuplicateID:
		return "A record with this ID already exists."
	case ErrCancelled:
		return "Operation cancelled."

	// ─── Persistence ───────────────────────────────────────────────────
	case ErrPersistence:
		return "Changes were applied but could not be saved."
	case ErrLoadFailed:
		return "Stored data could not be loaded. Starting with empty records."

	// ─── Internal ──────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
