package domain

// Item type values stored in the catalog
const (
	ItemTypeRare    = "rare"
	ItemTypeSticker = "sticker"
	ItemTypeCommon  = "common"
)

// MaxItemQuantity is the largest count one inventory row can hold
const MaxItemQuantity = 1<<31 - 1

// Item is an immutable catalog entry
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
}

// IsRare reports whether the item belongs to the rare category
func (i Item) IsRare() bool {
	return i.Type == ItemTypeRare
}

// UserItem is the quantity of one catalog item held by a user.
// Rows are kept at zero quantity.
type UserItem struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// InventoryItem is a catalog item joined with the quantity a user holds
type InventoryItem struct {
	Item
	Quantity int `json:"quantity"`
}
