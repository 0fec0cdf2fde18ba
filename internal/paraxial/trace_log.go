package paraxial

// TraceRecord is the full story of one traced ray, in a shape an external
// plotter can consume directly.
type TraceRecord struct {
	Index      int         `json:"index"`
	StartSlope Real        `json:"startSlope"`
	EndSlope   Real        `json:"endSlope"`
	Blocked    bool        `json:"blocked"`
	BlockedBy  int         `json:"blockedBy"` // lens id, or -1 when the ray survived
	Path       []PathPoint `json:"path"`
}

// TraceFan traces every ray in place and returns one record per ray.
func (s *OpticalSystem) TraceFan(rays []*Ray) []TraceRecord {
	records := make([]TraceRecord, 0, len(rays))
	for i, r := range rays {
		startU := r.U
		blocker := s.trace(r)
		rec := TraceRecord{
			Index:      i,
			StartSlope: startU,
			EndSlope:   r.U,
			Blocked:    blocker != nil,
			BlockedBy:  -1,
			Path:       r.Path,
		}
		if blocker != nil {
			rec.BlockedBy = blocker.ID
		}
		records = append(records, rec)
	}
	return records
}
