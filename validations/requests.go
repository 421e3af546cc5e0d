package validations

// ========== ROOMS ==========

type SetRoomStatusRequest struct {
	Status string `json:"status" binding:"required,roomstatus"`
}

type ListRoomsQuery struct {
	Status string `form:"status" binding:"omitempty,roomstatus"`
}

type SaveCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	BasePrice   float64 `json:"basePrice" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// ========== SESSIONS ==========

type QuoteQuery struct {
	Days        int    `form:"days,default=1"`
	ManualPrice string `form:"manualPrice"`
}

type CheckInRequest struct {
	GuestName    string `json:"guestName" binding:"required"`
	GuestAddress string `json:"guestAddress"`
	IDProof      string `json:"idProof"`
	Days         int    `json:"days" binding:"required,min=1"`
	// ManualPrice is typed by the operator; blank means use the computed total.
	ManualPrice string `json:"manualPrice"`
}

// ========== STAYS ==========

type ListStaysQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active history"`
}

type BillRequest struct {
	ExtraCharge *float64 `json:"extraCharge" binding:"omitempty,gte=0"`
	Total       *float64 `json:"total" binding:"omitempty,gt=0"`
	IncludeGST  bool     `json:"includeGst"`
	GSTIN       string   `json:"gstin" binding:"omitempty,len=15,alphanum"`
}

type CheckoutRequest struct {
	BillRequest
	Confirm       bool   `json:"confirm"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,paymentmethod"`
}

// ========== ACCOUNTS ==========

type AccountEntryRequest struct {
	GuestID       uint    `json:"guestId"`
	GuestName     string  `json:"guestName" binding:"required"`
	RoomID        uint    `json:"roomId"`
	BaseAmount    float64 `json:"baseAmount" binding:"gte=0"`
	ExtraHours    int     `json:"extraHours" binding:"gte=0"`
	ExtraCharge   float64 `json:"extraCharge" binding:"gte=0"`
	TotalAmount   float64 `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"omitempty,paymentmethod"`
}

type GSTQuery struct {
	Rate *float64 `form:"rate" binding:"omitempty,gte=0,lte=100"`
}
