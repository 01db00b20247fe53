package memory

import (
	"time"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// SeedUsers returns the demo user collection the portal boots with when
// running on the memory store. These accounts carry no password hash and
// therefore accept any password at login.
func SeedUsers() []*domain.User {
	return []*domain.User{
		{ID: "1", Email: "admin@christian-constantin.ch", Name: "Admin Principal", Department: "IT", Role: domain.RoleAdmin, Active: true, LastLogin: ts(2024, 4, 23, 8, 45, 12)},
		{ID: "2", Email: "jean.dupont@christian-constantin.ch", Name: "Jean Dupont", Department: "Comptabilité", Role: domain.RoleUser, Active: true, LastLogin: ts(2024, 4, 22, 14, 20, 45)},
		{ID: "3", Email: "marie.martin@christian-constantin.ch", Name: "Marie Martin", Department: "RH", Role: domain.RoleUser, Active: true, LastLogin: ts(2024, 4, 20, 9, 15, 30)},
		{ID: "4", Email: "pierre.blanc@christian-constantin.ch", Name: "Pierre Blanc", Department: "Commercial", Role: domain.RoleUser, Active: false, LastLogin: ts(2024, 3, 15, 16, 10, 22)},
		{ID: "5", Email: "sophie.leroy@christian-constantin.ch", Name: "Sophie Leroy", Department: "Marketing", Role: domain.RoleUser, Active: true, LastLogin: ts(2024, 4, 21, 11, 5, 18)},
	}
}

// SeedOrders returns the demo order collection, covering all four statuses.
func SeedOrders() []*domain.Order {
	return []*domain.Order{
		{
			ID: "1", Type: "Papeterie", Requester: "jean.dupont@christian-constantin.ch",
			Date: date(2024, 4, 23, 14, 35, 22), Status: domain.StatusPending,
			Items: []domain.OrderItem{
				{Name: "Color Copy 80 g/m² A4", Quantity: 5, Unit: "paquet(s)"},
				{Name: "Dos pinçant 3 mm", Quantity: 10, Unit: "paquet(s)"},
			},
		},
		{
			ID: "2", Type: "Informatique", Requester: "sophie.leroy@christian-constantin.ch",
			Date: date(2024, 4, 22, 9, 12, 45), Status: domain.StatusApproved,
			Items: []domain.OrderItem{
				{Name: "Écran Dell 27 pouces", Quantity: 1, Description: "Écran pour station de travail marketing"},
			},
		},
		{
			ID: "3", Type: "Papeterie", Requester: "marie.martin@christian-constantin.ch",
			Date: date(2024, 4, 20, 16, 47, 33), Status: domain.StatusCompleted,
			Items: []domain.OrderItem{
				{Name: "Color Copy 160 g/m² A4", Quantity: 2, Unit: "paquet(s)"},
				{Name: "Color Copy 90 g/m² A3", Quantity: 1, Unit: "paquet(s)"},
			},
		},
		{
			ID: "4", Type: "Informatique", Requester: "pierre.blanc@christian-constantin.ch",
			Date: date(2024, 4, 19, 11, 30, 15), Status: domain.StatusRejected,
			Items: []domain.OrderItem{
				{Name: "MacBook Pro 16\"", Quantity: 1, Description: "Remplacement poste commercial"},
			},
		},
	}
}

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm, ss int) *time.Time {
	t := date(y, m, d, hh, mm, ss)
	return &t
}
