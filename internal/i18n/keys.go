// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"
	KeyInfo    = "info"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartCleared     = "cart.cleared"
	KeyCartEmpty       = "cart.empty"

	// Orders
	KeyOrderPlaced   = "order.placed"
	KeyOrderNotFound = "order.not_found"

	// Products
	KeyProductListed   = "product.listed"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// AI advisor
	KeyAIAnalyzing   = "ai.analyzing"
	KeyAIReportReady = "ai.report_ready"

	// Notifications
	KeyNotificationNotFound = "notification.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
