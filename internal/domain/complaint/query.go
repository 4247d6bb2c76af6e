package complaint

import (
	"sort"
	"strings"
)

type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortPriority SortOrder = "priority"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriority:
		return true
	}
	return false
}

// Matches reports whether c passes every criterion of f. Search is a
// case-insensitive substring match over the code, subject, description,
// policy number and customer name.
func (f Filter) Matches(c *Complaint) bool {
	if c.IsArchived() && !f.IncludeArchived {
		return false
	}
	if f.CustomerID != nil && c.CustomerID() != *f.CustomerID {
		return false
	}
	if f.AssignedTo != nil && c.AssignedTo() != *f.AssignedTo {
		return false
	}
	if f.Status != nil && c.Status() != *f.Status {
		return false
	}
	if f.Priority != nil && c.Priority() != *f.Priority {
		return false
	}
	if f.Category != nil && c.Category() != *f.Category {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		q = strings.ToLower(q)
		fields := []string{c.Code(), c.Subject(), c.Description(), c.PolicyNumber(), c.CustomerName()}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
	return true
}

// Apply filters, sorts and pages items. The returned total counts matches
// before paging. A zero PageSize returns every match.
func (f Filter) Apply(items []*Complaint) ([]*Complaint, int64) {
	matched := make([]*Complaint, 0, len(items))
	for _, c := range items {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}

	Sort(matched, f.SortBy)
	total := int64(len(matched))

	if f.PageSize <= 0 {
		return matched, total
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * f.PageSize
	if start >= len(matched) {
		return []*Complaint{}, total
	}
	end := start + f.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total
}

// Sort orders items in place. An empty order keeps the collection order,
// which is most recent insert first. Priority order puts Critical first and
// breaks ties newest first; an unknown order sorts newest first.
func Sort(items []*Complaint, order SortOrder) {
	if order == "" {
		return
	}

	newest := func(a, b *Complaint) bool {
		return a.CreatedAt().After(b.CreatedAt())
	}

	switch order {
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt().Before(items[j].CreatedAt())
		})
	case SortPriority:
		sort.SliceStable(items, func(i, j int) bool {
			ri, rj := items[i].Priority().Rank(), items[j].Priority().Rank()
			if ri != rj {
				return ri < rj
			}
			return newest(items[i], items[j])
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return newest(items[i], items[j])
		})
	}
}
