package database

import (
	"fmt"

	"walletlink/internal/models"

	"gorm.io/gorm"
)

var defaultColors = []models.Color{
	{Name: "Red", TailwindClass: "bg-red-500", Hex: "#ef4444"},
	{Name: "Blue", TailwindClass: "bg-blue-500", Hex: "#3b82f6"},
	{Name: "Green", TailwindClass: "bg-green-500", Hex: "#22c55e"},
	{Name: "Yellow", TailwindClass: "bg-yellow-500", Hex: "#eab308"},
	{Name: "Purple", TailwindClass: "bg-purple-500", Hex: "#a855f7"},
	{Name: "Pink", TailwindClass: "bg-pink-500", Hex: "#ec4899"},
	{Name: "Orange", TailwindClass: "bg-orange-500", Hex: "#f97316"},
	{Name: "Indigo", TailwindClass: "bg-indigo-500", Hex: "#6366f1"},
	{Name: "Teal", TailwindClass: "bg-teal-500", Hex: "#14b8a6"},
	{Name: "Slate", TailwindClass: "bg-slate-500", Hex: "#64748b"},
}

var defaultIcons = []models.Icon{
	{Name: "Salary", URL: "https://api.iconify.design/mdi:briefcase-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"salary", "income", "job"}},
	{Name: "Gift", URL: "https://api.iconify.design/mdi:gift-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"gift", "present", "bonus"}},
	{Name: "Food", URL: "https://api.iconify.design/mdi:food.svg", Type: models.IconTypeCategory, Tags: models.StringList{"food", "meal", "restaurant"}},
	{Name: "Groceries", URL: "https://api.iconify.design/mdi:basket-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"grocery", "market", "home"}},
	{Name: "Shopping", URL: "https://api.iconify.design/mdi:shopping-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"shopping", "buy", "clothes"}},
	{Name: "Rent", URL: "https://api.iconify.design/mdi:home-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"rent", "house", "apartment"}},
	{Name: "Utilities", URL: "https://api.iconify.design/mdi:flash-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"electricity", "water", "gas"}},
	{Name: "Internet", URL: "https://api.iconify.design/mdi:wifi.svg", Type: models.IconTypeCategory, Tags: models.StringList{"wifi", "broadband", "internet"}},
	{Name: "Mobile Recharge", URL: "https://api.iconify.design/mdi:cellphone.svg", Type: models.IconTypeCategory, Tags: models.StringList{"recharge", "mobile", "phone"}},
	{Name: "Fuel", URL: "https://api.iconify.design/mdi:gas-station-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"fuel", "petrol", "diesel"}},
	{Name: "Transport", URL: "https://api.iconify.design/mdi:car-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"transport", "car", "commute"}},
	{Name: "Travel", URL: "https://api.iconify.design/mdi:airplane-variant.svg", Type: models.IconTypeCategory, Tags: models.StringList{"travel", "flight", "trip"}},
	{Name: "Hotel", URL: "https://api.iconify.design/mdi:bed-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"hotel", "stay", "room"}},
	{Name: "Entertainment", URL: "https://api.iconify.design/mdi:movie-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"movie", "entertainment", "netflix"}},
	{Name: "Subscription", URL: "https://api.iconify.design/mdi:repeat.svg", Type: models.IconTypeCategory, Tags: models.StringList{"subscription", "netflix", "spotify"}},
	{Name: "Health", URL: "https://api.iconify.design/mdi:heart-pulse.svg", Type: models.IconTypeCategory, Tags: models.StringList{"health", "doctor", "medicine"}},
	{Name: "Pharmacy", URL: "https://api.iconify.design/mdi:pill.svg", Type: models.IconTypeCategory, Tags: models.StringList{"pharmacy", "medicine", "health"}},
	{Name: "Education", URL: "https://api.iconify.design/mdi:book-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"education", "school", "tuition"}},
	{Name: "Loan EMI", URL: "https://api.iconify.design/mdi:bank-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"loan", "emi", "debt"}},
	{Name: "Investment", URL: "https://api.iconify.design/mdi:chart-line.svg", Type: models.IconTypeCategory, Tags: models.StringList{"investment", "stocks", "mutual fund"}},
	{Name: "Insurance", URL: "https://api.iconify.design/mdi:shield-check-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"insurance", "cover", "plan"}},
	{Name: "Freelance", URL: "https://api.iconify.design/mdi:laptop.svg", Type: models.IconTypeCategory, Tags: models.StringList{"freelance", "side-job", "project"}},
	{Name: "Bonus", URL: "https://api.iconify.design/mdi:cash-plus.svg", Type: models.IconTypeCategory, Tags: models.StringList{"bonus", "extra", "reward"}},
	{Name: "Refund", URL: "https://api.iconify.design/mdi:cash-refund.svg", Type: models.IconTypeCategory, Tags: models.StringList{"refund", "return", "cashback"}},
	{Name: "Charity", URL: "https://api.iconify.design/mdi:hand-heart-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"charity", "donate", "help"}},
	{Name: "Childcare", URL: "https://api.iconify.design/mdi:baby-face-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"baby", "kids", "childcare"}},
	{Name: "Pet", URL: "https://api.iconify.design/mdi:paw-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"pet", "dog", "cat"}},
	{Name: "Beauty", URL: "https://api.iconify.design/mdi:lipstick.svg", Type: models.IconTypeCategory, Tags: models.StringList{"beauty", "makeup", "cosmetic"}},
	{Name: "Laundry", URL: "https://api.iconify.design/mdi:washing-machine.svg", Type: models.IconTypeCategory, Tags: models.StringList{"laundry", "clothes", "wash"}},
	{Name: "Maintenance", URL: "https://api.iconify.design/mdi:tools.svg", Type: models.IconTypeCategory, Tags: models.StringList{"maintenance", "repair", "service"}},
	{Name: "Other", URL: "https://api.iconify.design/mdi:shape-outline.svg", Type: models.IconTypeCategory, Tags: models.StringList{"other", "misc", "extra"}},
	{Name: "Wallet", URL: "https://api.iconify.design/mdi:wallet-outline.svg", Type: models.IconTypeAccount, Tags: models.StringList{"wallet", "money", "cash"}},
	{Name: "Bank", URL: "https://api.iconify.design/mdi:bank-outline.svg", Type: models.IconTypeAccount, Tags: models.StringList{"bank", "finance", "account"}},
	{Name: "Cash", URL: "https://api.iconify.design/mdi:cash.svg", Type: models.IconTypeAccount, Tags: models.StringList{"cash", "currency", "hand money"}},
	{Name: "Credit Card", URL: "https://api.iconify.design/mdi:credit-card-outline.svg", Type: models.IconTypeAccount, Tags: models.StringList{"credit", "card", "payment"}},
	{Name: "Savings", URL: "https://api.iconify.design/mdi:piggy-bank-outline.svg", Type: models.IconTypeAccount, Tags: models.StringList{"savings", "bank", "safe"}},
	{Name: "Paytm", URL: "https://api.iconify.design/mdi:cellphone-nfc.svg", Type: models.IconTypeAccount, Tags: models.StringList{"paytm", "digital", "upi"}},
	{Name: "Google Pay", URL: "https://api.iconify.design/mdi:contactless-payment.svg", Type: models.IconTypeAccount, Tags: models.StringList{"gpay", "tap", "mobile pay"}},
	{Name: "PhonePe", URL: "https://api.iconify.design/mdi:cellphone-sound.svg", Type: models.IconTypeAccount, Tags: models.StringList{"phonepe", "wallet", "digital"}},
	{Name: "Crypto Wallet", URL: "https://api.iconify.design/mdi:bitcoin.svg", Type: models.IconTypeAccount, Tags: models.StringList{"crypto", "bitcoin", "wallet"}},
	{Name: "Investments", URL: "https://api.iconify.design/mdi:chart-bar.svg", Type: models.IconTypeAccount, Tags: models.StringList{"investment", "stocks", "money"}},
}

// SeedCatalog inserts the default colors and icons when their tables are empty.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var colorCount int64
		if err := tx.Model(&models.Color{}).Count(&colorCount).Error; err != nil {
			return fmt.Errorf("failed to count colors: %w", err)
		}
		if colorCount == 0 {
			colors := make([]models.Color, len(defaultColors))
			copy(colors, defaultColors)
			if err := tx.Create(&colors).Error; err != nil {
				return fmt.Errorf("failed to seed colors: %w", err)
			}
		}

		var iconCount int64
		if err := tx.Model(&models.Icon{}).Count(&iconCount).Error; err != nil {
			return fmt.Errorf("failed to count icons: %w", err)
		}
		if iconCount == 0 {
			icons := make([]models.Icon, len(defaultIcons))
			copy(icons, defaultIcons)
			if err := tx.Create(&icons).Error; err != nil {
				return fmt.Errorf("failed to seed icons: %w", err)
			}
		}

		return nil
	})
}
