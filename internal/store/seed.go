package store

import "github.com/spec-kit/equiflow/internal/domain"

// SeedUsers is the account set used when no user blob exists yet. Passwords
// are unset so the default applies.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Alice Chen", Role: domain.RoleAdmin, Email: "alice.chen@example.com"},
		{ID: "u2", Name: "Ben Torres", Role: domain.RoleEmployee, Email: "ben.torres@example.com"},
		{ID: "u3", Name: "Carol Huang", Role: domain.RoleEmployee, Email: "carol.huang@example.com"},
	}
}

// SeedItems is the starter inventory used when no item blob exists yet.
func SeedItems() []domain.EquipmentItem {
	return []domain.EquipmentItem{
		{ID: "it1", Name: "MacBook Pro 14", Category: "Laptops", Status: domain.ItemStatusAvailable, Specifications: "M3, 16GB RAM, 512GB SSD"},
		{ID: "it2", Name: "ThinkPad X1 Carbon", Category: "Laptops", Status: domain.ItemStatusAvailable, Specifications: "i7, 32GB RAM, 1TB SSD"},
		{ID: "it3", Name: "iPad Air", Category: "Tablets", Status: domain.ItemStatusAvailable, Specifications: "11-inch, 256GB"},
		{ID: "it4", Name: "Dell U2723QE", Category: "Monitors", Status: domain.ItemStatusAvailable, Specifications: "27-inch 4K, USB-C hub"},
		{ID: "it5", Name: "Sony WH-1000XM5", Category: "Audio", Status: domain.ItemStatusAvailable, Specifications: "Noise cancelling headphones"},
		{ID: "it6", Name: "Canon EOS R6", Category: "Cameras", Status: domain.ItemStatusAvailable, Specifications: "Body with 24-105mm lens"},
	}
}

// SeedCategories is the default category set.
func SeedCategories() []string {
	return []string{"Laptops", "Tablets", "Accessories", "Monitors", "Audio", "Furniture", "Cameras"}
}
