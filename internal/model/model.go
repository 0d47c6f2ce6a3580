// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the passive records exchanged with the rental
// service. These carry no behavior beyond small formatting helpers; the
// server owns their lifecycle and validation.
package model

import "fmt"

// Role identifies which of the three user identities a session belongs to.
// The role determines the endpoint namespace and which profile fields are
// meaningful.
type Role string

const (
	RoleTenant        Role = "tenant"
	RoleHouseOwner    Role = "house_owner"
	RoleAdministrator Role = "administrator"
)

// ParseRole maps user input to a Role. It accepts both the internal names
// and the URL spellings ("house-owner", "admin").
func ParseRole(s string) (Role, error) {
	switch s {
	case "tenant":
		return RoleTenant, nil
	case "house_owner", "house-owner", "owner":
		return RoleHouseOwner, nil
	case "administrator", "admin":
		return RoleAdministrator, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleHouseOwner, RoleAdministrator:
		return true
	}
	return false
}

// PathSegment returns the URL namespace the server uses for this role.
// The wire spelling differs from the internal name for two of the roles.
func (r Role) PathSegment() string {
	switch r {
	case RoleHouseOwner:
		return "house-owner"
	case RoleAdministrator:
		return "admin"
	default:
		return string(r)
	}
}

// UserProfile is the role-shaped identity record returned at login. Which
// fields are populated depends on the role: tenants have a full name,
// owners an owner name, administrators a username and no email address.
type UserProfile struct {
	ID           int    `json:"id"`
	EmailAddress string `json:"email_address,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	OwnerName    string `json:"owner_name,omitempty"`
	Username     string `json:"username,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	Address      string `json:"address,omitempty"`
}

// DisplayName returns the best available human-readable name for the user.
func (u UserProfile) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.OwnerName != "":
		return u.OwnerName
	case u.Username != "":
		return u.Username
	}
	return u.EmailAddress
}

// House is a rentable property listed by a house owner.
type House struct {
	ID           int          `json:"id"`
	Address      string       `json:"address"`
	City         string       `json:"house_city"`
	District     string       `json:"house_district"`
	State        string       `json:"house_state"`
	Descriptions string       `json:"descriptions,omitempty"`
	Price        float64      `json:"price"`
	HouseType    string       `json:"house_type"`
	Rooms        int          `json:"rooms"`
	Furnitures   string       `json:"furnitures,omitempty"`
	Variation    string       `json:"variation,omitempty"`
	Image        string       `json:"image,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	HouseOwnerID int          `json:"house_owner_id"`
	HouseOwner   *UserProfile `json:"houseOwner,omitempty"`
}

// Location renders "city, district, state" skipping empty parts.
func (h House) Location() string {
	loc := h.City
	if h.District != "" {
		loc += ", " + h.District
	}
	if h.State != "" {
		loc += ", " + h.State
	}
	return loc
}

// BookingStatus is the numeric status the server keeps on a booking.
type BookingStatus int

const (
	BookingPending  BookingStatus = 0
	BookingApproved BookingStatus = 1
	BookingRejected BookingStatus = 2
)

// String returns the canonical English label. UI layers translate via i18n
// using the same keys.
func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "pending"
	case BookingApproved:
		return "approved"
	case BookingRejected:
		return "rejected"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Booking is a tenant's request to rent a house for a date range.
type Booking struct {
	ID            int           `json:"id"`
	HouseID       int           `json:"house_id"`
	TenantEmail   string        `json:"tenant_email"`
	FromDate      string        `json:"from_date"`
	ToDate        string        `json:"to_date"`
	Duration      string        `json:"duration,omitempty"`
	Message       string        `json:"message,omitempty"`
	Status        BookingStatus `json:"status"`
	BookingNumber int           `json:"booking_number"`
	House         *House        `json:"house,omitempty"`
	Tenant        *UserProfile  `json:"tenant,omitempty"`
}

// Payment records a rent payment. The server associates payments to houses,
// not to individual bookings; see DESIGN.md.
type Payment struct {
	ID           int    `json:"id"`
	HouseID      int    `json:"house_id"`
	HouseOwnerID int    `json:"house_owner_id"`
	UserEmail    string `json:"user_email"`
	Details      string `json:"details,omitempty"`
	DatePayment  string `json:"date_payment"`
}

// Feedback is a tenant's review of a house.
type Feedback struct {
	ID             int    `json:"id"`
	Message        string `json:"message"`
	Rating         int    `json:"rating,omitempty"`
	TenantFullName string `json:"tenant_full_name,omitempty"`
	HouseAddress   string `json:"house_address,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Agreement is the administrator-issued rental agreement tying a booking,
// house, owner and tenant together.
type Agreement struct {
	ID           int          `json:"id"`
	BookingNo    int          `json:"booking_no"`
	HouseID      int          `json:"house_id"`
	HouseOwnerID int          `json:"house_owner_id"`
	UserEmail    string       `json:"user_email"`
	AdminID      *int         `json:"admin_id,omitempty"`
	Remember     string       `json:"remember,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty"`
	UpdatedAt    string       `json:"updated_at,omitempty"`
	Booking      *Booking     `json:"booking,omitempty"`
	House        *House       `json:"house,omitempty"`
	HouseOwner   *UserProfile `json:"house_owner,omitempty"`
	Tenant       *UserProfile `json:"tenant,omitempty"`
}
