package enum

// ── Order lifecycle (the queue state machine) ──

const (
	OrderStatusWaiting   = "Waiting"
	OrderStatusPreparing = "Preparing"
	OrderStatusServed    = "Served"
)

const (
	ServiceTypeDineIn  = "Dine-in"
	ServiceTypeTakeOut = "Take-out"
)

const (
	PackagingStandard = "Standard"
	PackagingPremium  = "Premium"
	PackagingNone     = "None"
)

// ── Line item options ──

const (
	SizeRegular = "Regular"
	SizeLarge   = "Large"
)

const (
	TempHot  = "Hot"
	TempCold = "Cold"
	TempIced = "Iced"
	TempNA   = "N/A"
)

// ── Catalog labels (no DB constraint) ──

const (
	CategoryCoffee        = "Coffee"
	CategoryTea           = "Tea"
	CategorySweetTreats   = "Sweet Treats"
	CategoryHotBeverages  = "Hot Beverages"
	CategoryColdBeverages = "Cold Beverages"
	CategoryFood          = "Food"
)
