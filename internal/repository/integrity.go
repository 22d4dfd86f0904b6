package repository

// integritySweep re-establishes referential integrity after a delete.
// Instead of scattering cascade logic across each delete operation, every
// delete runs this one sweep:
//
//   - profiles and shops pointing at a missing department lose the
//     reference (the rows survive)
//   - profiles pointing at a missing manager lose the reference
//   - shops owned by a missing profile lose the owner reference
//   - revenue and report rows of a missing shop are removed (the shop
//     cascade), which also covers rows orphaned by any earlier delete
//
// Rows whose references change get a fresh UpdatedAt. The caller must
// hold the write lock.
func (s *MemoryStore) integritySweep() {
	now := s.now()

	departments := make(map[string]bool, len(s.departments))
	for _, d := range s.departments {
		departments[d.ID] = true
	}
	profiles := make(map[string]bool, len(s.profiles))
	for _, p := range s.profiles {
		profiles[p.ID] = true
	}
	shops := make(map[string]bool, len(s.shops))
	for _, sh := range s.shops {
		shops[sh.ID] = true
	}

	for _, p := range s.profiles {
		if p.DepartmentID != nil && !departments[*p.DepartmentID] {
			p.DepartmentID = nil
			p.UpdatedAt = now
		}
		if p.ManagerID != nil && !profiles[*p.ManagerID] {
			p.ManagerID = nil
			p.UpdatedAt = now
		}
	}

	for _, sh := range s.shops {
		if sh.DepartmentID != nil && !departments[*sh.DepartmentID] {
			sh.DepartmentID = nil
			sh.UpdatedAt = now
		}
		if sh.ProfileID != nil && !profiles[*sh.ProfileID] {
			sh.ProfileID = nil
			sh.UpdatedAt = now
		}
	}

	kept := s.revenues[:0]
	for _, r := range s.revenues {
		if shops[r.ShopID] {
			kept = append(kept, r)
		}
	}
	s.revenues = kept

	keptReports := s.reports[:0]
	for _, r := range s.reports {
		if r.ShopID == nil || shops[*r.ShopID] {
			keptReports = append(keptReports, r)
		}
	}
	s.reports = keptReports
}
