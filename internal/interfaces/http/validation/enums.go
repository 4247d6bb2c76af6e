// Package validation registers the domain enum tags used by request binding.
package validation

import (
	"sync"

	"complaintdesk/internal/domain/complaint"
	vo "complaintdesk/internal/domain/complaint/valueobjects"
	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/utils"
)

var (
	registerOnce sync.Once
	registerErr  error
)

var enums = map[string]func(string) bool{
	"complaint_status":   func(s string) bool { return vo.Status(s).IsValid() },
	"complaint_priority": func(s string) bool { return vo.Priority(s).IsValid() },
	"complaint_category": func(s string) bool { return vo.Category(s).IsValid() },
	"user_role":          func(s string) bool { return user.Role(s).IsValid() },
	"sort_order":         func(s string) bool { return complaint.SortOrder(s).IsValid() },
}

// RegisterEnums installs every enum tag on the shared validator. Repeated
// calls return the result of the first.
func RegisterEnums() error {
	registerOnce.Do(func() {
		for tag, valid := range enums {
			if err := utils.RegisterEnum(tag, valid); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

// MustRegisterEnums panics when registration fails. Intended for tests and
// process start-up.
func MustRegisterEnums() {
	if err := RegisterEnums(); err != nil {
		panic(err)
	}
}
