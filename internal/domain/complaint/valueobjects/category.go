package valueobjects

import "fmt"

type Category string

const (
	CategoryClaims          Category = "Claims"
	CategoryPolicyIssues    Category = "Policy Issues"
	CategoryBilling         Category = "Billing"
	CategoryCustomerService Category = "Customer Service"
	CategoryOther           Category = "Other"
)

func AllCategories() []Category {
	return []Category{
		CategoryClaims,
		CategoryPolicyIssues,
		CategoryBilling,
		CategoryCustomerService,
		CategoryOther,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryClaims, CategoryPolicyIssues, CategoryBilling, CategoryCustomerService, CategoryOther:
		return true
	}
	return false
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
