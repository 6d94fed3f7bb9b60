package types

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type BillingCycle string

const (
	BillingCycleWeekly    BillingCycle = "weekly"
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
	BillingCycleOther     BillingCycle = "other"
)

type SubscriptionCategory string

const (
	SubscriptionCategoryStreaming SubscriptionCategory = "streaming"
	SubscriptionCategoryMealKit   SubscriptionCategory = "meal_kit"
	SubscriptionCategoryUtility   SubscriptionCategory = "utility"
	SubscriptionCategoryOther     SubscriptionCategory = "other"
)

type MaintenanceCategory string

const (
	MaintenanceCategoryHome    MaintenanceCategory = "home"
	MaintenanceCategoryVehicle MaintenanceCategory = "vehicle"
	MaintenanceCategoryHealth  MaintenanceCategory = "health"
	MaintenanceCategoryOther   MaintenanceCategory = "other"
)

type OrderType string

const (
	OrderTypeRecurring OrderType = "recurring"
	OrderTypeOneTime   OrderType = "one_time"
)

type OrderFrequency string

const (
	OrderFrequencyWeekly   OrderFrequency = "weekly"
	OrderFrequencyBiweekly OrderFrequency = "biweekly"
	OrderFrequencyMonthly  OrderFrequency = "monthly"
)

type OrderStatus string

const (
	OrderStatusUpcoming  OrderStatus = "upcoming"
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusRecurring OrderStatus = "recurring"
)

type InventoryCategory string

const (
	InventoryCategoryGrocery   InventoryCategory = "grocery"
	InventoryCategoryHousehold InventoryCategory = "household"
	InventoryCategoryPersonal  InventoryCategory = "personal"
	InventoryCategoryOther     InventoryCategory = "other"
)

type DocumentType string

const (
	DocumentTypeWarranty  DocumentType = "warranty"
	DocumentTypeManual    DocumentType = "manual"
	DocumentTypeInsurance DocumentType = "insurance"
	DocumentTypeLease     DocumentType = "lease"
	DocumentTypeOther     DocumentType = "other"
)
