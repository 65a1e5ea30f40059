package entity

// MenuStatus is the sale state of a menu. A new menu starts as FOR_SALE;
// the only transition is an explicit overwrite through a menu update.
type MenuStatus string

const (
	StatusForSale MenuStatus = "FOR_SALE"
	StatusSoldOut MenuStatus = "SOLD_OUT"
)

func (s MenuStatus) Valid() bool {
	return s == StatusForSale || s == StatusSoldOut
}
