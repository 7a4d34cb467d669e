package models

import "fmt"

// InvalidValueError is returned when a display name matches no enum constant.
type InvalidValueError struct {
	Kind  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Kind, e.Value)
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipping   OrderStatus = "Shipping"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusNew, OrderStatusProcessing, OrderStatusShipping, OrderStatusDelivered, OrderStatusCancelled,
}

func (s OrderStatus) DisplayName() string { return string(s) }

// IsFinal reports whether no further transition is allowed.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Cancellable reports whether an order in this state may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusNew || s == OrderStatusProcessing
}

func ParseOrderStatus(name string) (OrderStatus, error) {
	return parseEnum(orderStatuses, "order status", name)
}

func OrderStatusNames() []string { return names(orderStatuses) }

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
)

var paymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCard}

func (m PaymentMethod) DisplayName() string { return string(m) }

func ParsePaymentMethod(name string) (PaymentMethod, error) {
	return parseEnum(paymentMethods, "payment method", name)
}

func PaymentMethodNames() []string { return names(paymentMethods) }

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) DisplayName() string { return string(g) }

func ParseGender(name string) (Gender, error) {
	return parseEnum(genders, "gender", name)
}

func GenderNames() []string { return names(genders) }

// Role decides both authorization and the prefix of the user code.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStaff    Role = "Staff"
	RoleCustomer Role = "Customer"
)

var roles = []Role{RoleAdmin, RoleStaff, RoleCustomer}

func (r Role) DisplayName() string { return string(r) }

func ParseRole(name string) (Role, error) {
	return parseEnum(roles, "role", name)
}

func RoleNames() []string { return names(roles) }

func parseEnum[T ~string](values []T, kind, name string) (T, error) {
	for _, v := range values {
		if string(v) == name {
			return v, nil
		}
	}
	return "", &InvalidValueError{Kind: kind, Value: name}
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
