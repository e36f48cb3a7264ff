// internal/models/common.go
package models

// MarketOrigin tags which market segment a product was listed in. It
// replaces the old convention of encoding the segment in the product id
// prefix, which broke whenever ids were regenerated.
type MarketOrigin string

const (
	MarketOriginStandard  MarketOrigin = "standard"
	MarketOriginWholesale MarketOrigin = "wholesale_hub"
	MarketOriginThrift    MarketOrigin = "thrift"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type OrderType string

const (
	OrderTypeRetail    OrderType = "Retail"
	OrderTypeWholesale OrderType = "Wholesale"
)

type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeInfo    NotificationType = "info"
)
