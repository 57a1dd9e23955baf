package model

// UpdateResult lists which fields changed and why others were kept.
type UpdateResult struct {
	Changed  []string
	Rejected map[string]string
	Notices  []string
}

// HasChanges reports whether any field was replaced.
func (r UpdateResult) HasChanges() bool { return len(r.Changed) > 0 }

// Reject records why field kept its previous value.
func (r *UpdateResult) Reject(field, reason string) {
	if r.Rejected == nil {
		r.Rejected = make(map[string]string)
	}
	r.Rejected[field] = reason
}
