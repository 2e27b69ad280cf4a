package models

// Role determines which marketplace operations a user may perform.
type Role string

const (
	RoleSeller     Role = "seller"
	RoleSpecialist Role = "specialist"
	RoleBuyer      Role = "buyer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleSpecialist, RoleBuyer:
		return true
	}
	return false
}

type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Device struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"user_id"`
	Name     string `json:"name"`
	Specs    string `json:"specs"`
	PriceUSD uint32 `json:"price_usd"`
}

type WarrantyContract struct {
	ID             uint64 `json:"id"`
	SellerID       uint64 `json:"seller_id"`
	BuyerID        uint64 `json:"buyer_id"`
	DeviceID       uint64 `json:"device_id"`
	WarrantyMonths uint32 `json:"warranty_months"`
	ExpiryDate     int64  `json:"expiry_date"`
}

type Report struct {
	ID             uint64 `json:"id"`
	DeviceID       uint64 `json:"device_id"`
	SpecialistName string `json:"specialist_name"`
	Notes          string `json:"notes"`
	Timestamp      int64  `json:"timestamp"`
}

// Cart is keyed by its owner, one cart per buyer. DeviceIDs keeps
// insertion order and holds no duplicates.
type Cart struct {
	UserID    uint64   `json:"user_id"`
	DeviceIDs []uint64 `json:"device_ids"`
}

type Order struct {
	ID        uint64 `json:"id"`
	BuyerID   uint64 `json:"buyer_id"`
	SellerID  uint64 `json:"seller_id"`
	DeviceID  uint64 `json:"device_id"`
	Timestamp int64  `json:"timestamp"`
}
