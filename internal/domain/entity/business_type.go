// Package entity contains the core business objects of the project.
package entity

// BusinessType classifies a Location. The set is closed for data quality, but
// unknown legacy values are normalized to BusinessTypeOther rather than
// rejected, so older imports keep loading.
type BusinessType string

const (
	// BusinessTypeCoffee indicates a coffee shop.
	BusinessTypeCoffee BusinessType = "coffee"
	// BusinessTypeRestaurant indicates a restaurant.
	BusinessTypeRestaurant BusinessType = "restaurant"
	// BusinessTypeRetail indicates a retail store.
	BusinessTypeRetail BusinessType = "retail"
	// BusinessTypeFitness indicates a fitness business.
	BusinessTypeFitness BusinessType = "fitness"
	// BusinessTypeService indicates a service business.
	BusinessTypeService BusinessType = "service"
	// BusinessTypeOther is the fallback category.
	BusinessTypeOther BusinessType = "other"
)

// String returns the string representation of the BusinessType.
func (b BusinessType) String() string {
	return string(b)
}

// IsValid checks if the BusinessType is a known value.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeCoffee, BusinessTypeRestaurant, BusinessTypeRetail,
		BusinessTypeFitness, BusinessTypeService, BusinessTypeOther:
		return true
	default:
		return false
	}
}

// NormalizeBusinessType maps an arbitrary string onto the closed enum.
// Empty input and unknown legacy values both map to BusinessTypeOther.
func NormalizeBusinessType(s string) BusinessType {
	bt := BusinessType(s)
	if !bt.IsValid() {
		return BusinessTypeOther
	}

	return bt
}
